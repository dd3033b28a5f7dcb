package web

import (
	"mime"
	"net/http"
	"strconv"
)

// attachmentSaver delivers an export as a file download.
type attachmentSaver struct {
	w http.ResponseWriter
}

// Save implements session.Saver.
func (s attachmentSaver) Save(filename, contentType string, data []byte) error {
	h := s.w.Header()
	h.Set("Content-Type", contentType)
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	h.Set("Content-Length", strconv.Itoa(len(data)))
	s.w.WriteHeader(http.StatusOK)
	_, err := s.w.Write(data)
	return err
}
