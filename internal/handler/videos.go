package handler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/skylt-tv/signage-manager/backend/internal/storage"
	"github.com/skylt-tv/signage-manager/backend/internal/utils"
)

type videoPayload struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	Size       int64  `json:"size"`
	ColorIndex int    `json:"colorIndex"`
}

func (h *Handler) ListVideos(w http.ResponseWriter, r *http.Request) {
	objects, err := h.storage.List(storage.Namespace)
	if err != nil {
		h.errorResponse(w, r, fmt.Sprintf("V006: 获取视频列表失败（%v）", err))
		return
	}

	videos := make([]videoPayload, 0, len(objects))
	for _, obj := range objects {
		name := strings.TrimPrefix(obj.Key, storage.Namespace)
		if !utils.HasAllowedVideoExtension(name) {
			continue
		}
		videos = append(videos, videoPayload{
			Name:       name,
			URL:        h.storage.PublicURL(obj.Key),
			Size:       obj.Size,
			ColorIndex: utils.VideoColorIndex(name),
		})
	}

	h.successResponse(w, r, "获取视频列表成功", videos)
}

func (h *Handler) UploadVideo(w http.ResponseWriter, r *http.Request) {
	maxBytes := int64(h.config.Upload.MaxSizeMB) * 1024 * 1024

	// 预留一点空间给 multipart 边界等开销
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+1024*1024)

	file, header, err := r.FormFile("file")
	if err != nil {
		// 只有超出 MaxBytesReader 上限才是大小问题，其余的 multipart 解析错误按普通的请求错误处理
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.errorResponse(w, r, fmt.Sprintf("V002: 文件大小超过限制（%dMB）", h.config.Upload.MaxSizeMB))
			return
		}
		h.badRequest(w, r, err)
		return
	}
	defer file.Close()

	// 在发起任何存储调用之前先做格式和大小校验
	contentType := header.Header.Get("Content-Type")
	if err := utils.ValidateVideoUpload(contentType, header.Size, h.config.Upload.MaxSizeMB); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	// 文件名整理后再加毫秒时间戳前缀，避免同名覆盖
	sanitized := utils.SanitizeFilename(header.Filename)
	key := fmt.Sprintf("%s%d-%s", storage.Namespace, time.Now().UnixMilli(), sanitized)

	if err := h.storage.Put(key, file, contentType, "3600"); err != nil {
		h.errorResponse(w, r, fmt.Sprintf("V003: 上传失败（%v）", err))
		return
	}

	h.successResponse(w, r, "上传成功", videoPayload{
		Name:       strings.TrimPrefix(key, storage.Namespace),
		URL:        h.storage.PublicURL(key),
		Size:       header.Size,
		ColorIndex: utils.VideoColorIndex(strings.TrimPrefix(key, storage.Namespace)),
	})
}

func (h *Handler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || name == "" {
		h.errorResponse(w, r, "视频名无效")
		return
	}

	if err := h.storage.Delete(storage.Namespace + name); err != nil {
		h.errorResponse(w, r, fmt.Sprintf("V007: 删除视频失败（%v）", err))
		return
	}

	h.successResponse(w, r, "删除视频成功", nil)
}

// RenameVideo 通过“下载旧文件、以新名字上传、删除旧文件”来实现改名，
// 对象存储本身没有原子的改名操作。
func (h *Handler) RenameVideo(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || name == "" {
		h.errorResponse(w, r, "视频名无效")
		return
	}

	var req struct {
		NewName string `json:"newName" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if !utils.HasAllowedVideoExtension(req.NewName) {
		h.errorResponse(w, r, "V001: 不支持的文件格式，仅允许 MP4 和 MOV")
		return
	}

	newName := utils.SanitizeFilename(req.NewName)
	if newName == name {
		h.successResponse(w, r, "视频名未变化", nil)
		return
	}

	obj, err := h.storage.Get(storage.Namespace + name)
	if err != nil {
		h.errorResponse(w, r, fmt.Sprintf("V004: 视频处理失败（%v）", err))
		return
	}
	defer obj.Body.Close()

	// Put 需要可以 Seek 的 reader，这里把文件读进内存再上传
	data, err := io.ReadAll(obj.Body)
	if err != nil {
		h.errorResponse(w, r, fmt.Sprintf("V004: 视频处理失败（%v）", err))
		return
	}

	if err := h.storage.Put(storage.Namespace+newName, bytes.NewReader(data), obj.ContentType, "3600"); err != nil {
		h.errorResponse(w, r, fmt.Sprintf("V004: 视频处理失败（%v）", err))
		return
	}

	if err := h.storage.Delete(storage.Namespace + name); err != nil {
		h.errorResponse(w, r, fmt.Sprintf("V004: 视频处理失败（%v）", err))
		return
	}

	h.successResponse(w, r, "重命名成功", videoPayload{
		Name:       newName,
		URL:        h.storage.PublicURL(storage.Namespace + newName),
		Size:       int64(len(data)),
		ColorIndex: utils.VideoColorIndex(newName),
	})
}
