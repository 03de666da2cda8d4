package services

import (
	"io"
	"mime/multipart"

	"github.com/TommyTeaVee/impilo-regform/storage"
	"github.com/TommyTeaVee/impilo-regform/utils"
)

// Uploader pushes one file to the media host and returns its durable URL.
type Uploader func(data []byte, folder, publicID string) (string, error)

// SlotExtraImages is the only multi-valued upload slot.
const SlotExtraImages = "extraImages"

// MaxExtraImages caps the extra gallery; surplus files are dropped, not rejected.
const MaxExtraImages = 10

const miscFolder = "impilo/misc"

// SingleSlots lists every single-valued upload slot in form order.
var SingleSlots = []string{
	"profileImage",
	"fullBodyImage",
	"fullDress",
	"fullShorts",
	"fullJeans",
	"closeForward",
	"closeLeft",
	"closeRight",
	"sportswear",
	"summerwear",
	"swimwear",
}

// slotFolders routes each upload slot to its Cloudinary folder.
// New slots are additive entries here; unmapped names fall back to miscFolder.
var slotFolders = map[string]string{
	"profileImage":   "impilo/profile",
	"fullBodyImage":  "impilo/fullbody",
	"fullDress":      "impilo/fullbody",
	"fullShorts":     "impilo/fullbody",
	"fullJeans":      "impilo/fullbody",
	"closeForward":   "impilo/closeups",
	"closeLeft":      "impilo/closeups",
	"closeRight":     "impilo/closeups",
	"sportswear":     "impilo/outfits",
	"summerwear":     "impilo/outfits",
	"swimwear":       "impilo/outfits",
	SlotExtraImages:  "impilo/extra",
}

// SlotFolder resolves the destination folder for an upload slot.
func SlotFolder(slot string) string {
	if folder, ok := slotFolders[slot]; ok {
		return folder
	}
	return miscFolder
}

// MediaSet is the bound result of one submission's uploads: a URL per
// single-valued slot ("" when nothing was uploaded) and the ordered extras.
type MediaSet struct {
	Single map[string]string
	Extras []string
}

// URL returns the bound location of a single-valued slot.
func (m *MediaSet) URL(slot string) string {
	return m.Single[slot]
}

// MediaBinder resolves upload slots to stored file locations. The Upload
// func is swappable so tests never talk to Cloudinary.
type MediaBinder struct {
	Upload Uploader
}

func NewMediaBinder() *MediaBinder {
	return &MediaBinder{Upload: storage.UploadImage}
}

// Bind uploads every file of the request and returns the resolved locations.
// Single-valued slots bind their first file; extraImages binds all files in
// upload order up to MaxExtraImages. The first failed upload aborts binding.
func (b *MediaBinder) Bind(files map[string][]*multipart.FileHeader) (*MediaSet, error) {
	set := &MediaSet{Single: map[string]string{}, Extras: []string{}}

	for _, slot := range SingleSlots {
		headers := files[slot]
		if len(headers) == 0 {
			continue
		}
		url, err := b.uploadOne(slot, headers[0])
		if err != nil {
			return nil, err
		}
		set.Single[slot] = url
	}

	extras := files[SlotExtraImages]
	if len(extras) > MaxExtraImages {
		extras = extras[:MaxExtraImages]
	}
	for _, fh := range extras {
		url, err := b.uploadOne(SlotExtraImages, fh)
		if err != nil {
			return nil, err
		}
		set.Extras = append(set.Extras, url)
	}

	return set, nil
}

func (b *MediaBinder) uploadOne(slot string, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", &UpstreamMediaError{Slot: slot, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", &UpstreamMediaError{Slot: slot, Err: err}
	}

	url, err := b.Upload(data, SlotFolder(slot), slot+"-"+utils.GenerateShortToken(8))
	if err != nil {
		return "", &UpstreamMediaError{Slot: slot, Err: err}
	}
	return url, nil
}
