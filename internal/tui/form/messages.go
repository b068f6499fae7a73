package form

// CopyResultMsg reports the outcome of a clipboard write. Seq is the
// notification sequence current when the copy was dispatched.
type CopyResultMsg struct {
	Text string
	Seq  uint64
	Err  error
}

// DownloadResultMsg reports the outcome of a PNG export.
type DownloadResultMsg struct {
	Path string
	Err  error
}
