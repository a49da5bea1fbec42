package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalProvider 用本地目录模拟对象存储，主要用于开发环境和测试。
type LocalProvider struct {
	root          string
	publicBaseURL string
}

func NewLocalProvider(root, publicBaseURL string) *LocalProvider {
	_ = os.MkdirAll(root, 0755)
	return &LocalProvider{
		root:          root,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

func (l *LocalProvider) List(prefix string) ([]Object, error) {
	var objects []Object

	err := filepath.Walk(l.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		// 把系统路径转换回对象存储风格的 key（正斜杠）
		rel, _ := filepath.Rel(l.root, path)
		key := filepath.ToSlash(rel)

		if strings.HasPrefix(key, prefix) {
			objects = append(objects, Object{
				Key:          key,
				Size:         info.Size(),
				LastModified: info.ModTime(),
			})
		}
		return nil
	})

	return objects, err
}

func (l *LocalProvider) Get(key string) (*FileObject, error) {
	f, err := os.Open(filepath.Join(l.root, filepath.FromSlash(key)))
	if err != nil {
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	return &FileObject{
		Body:          f,
		ContentLength: stat.Size(),
		ContentType:   "application/octet-stream", // 本地文件不保存内容类型
		LastModified:  stat.ModTime(),
	}, nil
}

func (l *LocalProvider) Put(key string, body io.ReadSeeker, contentType, cacheControl string) error {
	path := filepath.Join(l.root, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, body)
	return err
}

func (l *LocalProvider) Delete(keys ...string) error {
	for _, key := range keys {
		if err := os.Remove(filepath.Join(l.root, filepath.FromSlash(key))); err != nil {
			return err
		}
	}
	return nil
}

func (l *LocalProvider) PublicURL(key string) string {
	return l.publicBaseURL + "/" + key
}
