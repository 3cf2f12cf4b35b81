package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/acidbase/internal/storage"
	"github.com/san-kum/acidbase/internal/sweep"
)

type ExportData struct {
	storage.RunMetadata
	Data []sweep.Point `json:"data"`
}

// WriteJSON writes a stored run and its points as indented JSON.
func WriteJSON(w io.Writer, meta storage.RunMetadata, points []sweep.Point) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{RunMetadata: meta, Data: points})
}
