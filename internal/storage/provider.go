package storage

import (
	"io"
	"time"
)

// 所有视频都存放在桶内固定的 public/ 命名空间下。
const Namespace = "public/"

// Provider 定义任意存储后端需要实现的行为。
type Provider interface {
	List(prefix string) ([]Object, error)
	Get(key string) (*FileObject, error)
	Put(key string, body io.ReadSeeker, contentType, cacheControl string) error
	Delete(keys ...string) error
	PublicURL(key string) string
}

// Object 是列表结果中与后端无关的文件表示。
type Object struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// FileObject 是下载结果中与后端无关的文件表示。
type FileObject struct {
	Body          io.ReadCloser
	ContentLength int64
	ContentType   string
	LastModified  time.Time
}
