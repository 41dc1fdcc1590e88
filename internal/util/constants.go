package util

// 证书日期使用巴西格式 dd/mm/yyyy
const DateFormatBR = "02/01/2006"

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// 文件上传相关常量
const (
	MimeWebP = "image/webp"
	MimePNG  = "image/png"
)

// 头像上传限制
const (
	MaxAvatarSize = 5 << 20
	AvatarSide    = 256
)

var AllowedAvatarTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
