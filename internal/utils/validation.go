package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// 只接受这两种视频格式，与电视端播放器保持一致
var AllowedVideoTypes = []string{"video/mp4", "video/quicktime"}

var allowedVideoExtensions = []string{".mp4", ".mov"}

// ValidateVideoUpload 在任何网络调用之前做客户端层面的校验：
// 格式不支持返回 V001，超出大小限制返回 V002。
func ValidateVideoUpload(contentType string, size int64, maxSizeMB int) error {
	allowed := false
	for _, t := range AllowedVideoTypes {
		if contentType == t {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("V001: 不支持的文件格式，仅允许 MP4 和 MOV")
	}

	if size > int64(maxSizeMB)*1024*1024 {
		return fmt.Errorf("V002: 文件大小超过限制（%dMB）", maxSizeMB)
	}

	return nil
}

// HasAllowedVideoExtension 判断文件名是否以允许的视频扩展名结尾。
func HasAllowedVideoExtension(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range allowedVideoExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

var disallowedFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

var whitespaceRuns = regexp.MustCompile(`\s+`)

var swedishReplacer = strings.NewReplacer(
	"å", "a", "ä", "a", "ö", "o",
	"Å", "A", "Ä", "A", "Ö", "O",
)

// SanitizeFilename 把上传的文件名整理成对象存储可以接受的形式：
// 连续空白变成一个下划线（首尾的空白也一样），瑞典语字符映射为 ASCII，
// 其余非法字符直接去掉。
func SanitizeFilename(filename string) string {
	sanitized := whitespaceRuns.ReplaceAllString(filename, "_")
	sanitized = swedishReplacer.Replace(sanitized)
	return disallowedFilenameChars.ReplaceAllString(sanitized, "")
}

// 日历渲染用的配色数量，与前端的调色板一致
const VideoColorPaletteSize = 7

// VideoColorIndex 根据视频名确定性地选择一个颜色下标，
// 计算前去掉上传时加的毫秒时间戳前缀，保证同一视频改名前后颜色稳定。
func VideoColorIndex(videoName string) int {
	base := videoName
	if idx := strings.Index(videoName, "-"); idx >= 0 {
		base = videoName[idx+1:]
	}

	sum := 0
	for _, c := range base {
		sum += int(c)
	}
	return sum % VideoColorPaletteSize
}
