package form

// User-facing text. The form ships with fixed Thai copy.
const (
	labelTitle        = "Floral QR"
	labelURL          = "กรอก URL"
	labelGenerate     = "สร้าง QR Code"
	labelSizeSmall    = "เล็ก"
	labelSizeMedium   = "กลาง"
	labelSizeLarge    = "ใหญ่"
	labelColor        = "สีที่เลือก:"
	labelColorPicker  = "เลือกสี QR Code"
	labelCopy         = "คัดลอก URL"
	labelDownload     = "ดาวน์โหลด QR Code"
	labelDownloading  = "กำลังดาวน์โหลด..."
	labelBackdrop     = "พื้นหลัง:"
	placeholderURL    = "https://example.com"
	placeholderColour = "#F9A825"

	MsgGenerated        = "QR Code สร้างเรียบร้อยแล้ว"
	MsgInputRequired    = "กรุณากรอก URL"
	MsgCopied           = "คัดลอก URL สำเร็จ"
	MsgCopyFailed       = "คัดลอก URL ไม่สำเร็จ"
	MsgDownloaded       = "ดาวน์โหลด QR Code สำเร็จ"
	MsgDownloadFailed   = "ดาวน์โหลด QR Code ไม่สำเร็จ"
	MsgArtifactRequired = "กรุณาสร้าง QR Code ก่อน"
	MsgRenderFailed     = "สร้าง QR Code ไม่สำเร็จ"
)
