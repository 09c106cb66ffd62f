package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/apperr"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/imaging"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/respond"
)

// ObjectStore uploads public files. *storage.Client satisfies it.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}

type sharePreviewResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// SharePreview serves PUT /api/personal-pages/{shortId}/share-preview.
// The page owner sets the link preview title, description and site name
// and may upload an image, which is cropped to 1200x630 and stored in
// object storage. The body is multipart/form-data.
func (p *Public) SharePreview(w http.ResponseWriter, r *http.Request) {
	uid, err := requireUser(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	page, err := p.ownedPage(r, uid)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, imaging.MaxUploadBytes+64<<10)
	if err := r.ParseMultipartForm(imaging.MaxUploadBytes); err != nil {
		respond.Error(w, r, apperr.ValidationError("Invalid form data").Wrap(err))
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	description := strings.TrimSpace(r.FormValue("description"))
	siteName := strings.TrimSpace(r.FormValue("siteName"))
	if problems := validateShareMeta(title, description, siteName); len(problems) > 0 {
		respond.Error(w, r, apperr.ValidationError("Validation failed", problems...))
		return
	}

	imageURL := page.ShareImageURL
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		if !imaging.AllowedTypes[header.Header.Get("Content-Type")] {
			respond.Error(w, r, apperr.ValidationError("Unsupported image type"))
			return
		}
		if p.objects == nil {
			respond.Error(w, r, apperr.Unavailable("Image upload is not available"))
			return
		}
		raw, err := io.ReadAll(io.LimitReader(file, imaging.MaxUploadBytes+1))
		if err != nil {
			respond.Error(w, r, apperr.ValidationError("Invalid image").Wrap(err))
			return
		}
		if len(raw) > imaging.MaxUploadBytes {
			respond.Error(w, r, apperr.ValidationError("Image is too large"))
			return
		}
		jpeg, err := imaging.Cover(bytes.NewReader(raw), imaging.ShareWidth, imaging.ShareHeight)
		if err != nil {
			if errors.Is(err, imaging.ErrTooLarge) {
				respond.Error(w, r, apperr.ValidationError("Image is too large"))
				return
			}
			respond.Error(w, r, apperr.ValidationError("Invalid image").Wrap(err))
			return
		}
		imageURL, err = p.objects.Put(r.Context(), "share/"+page.ShortID+".jpg", "image/jpeg", jpeg)
		if err != nil {
			respond.Error(w, r, apperr.Internal(err))
			return
		}
	} else if !errors.Is(err, http.ErrMissingFile) {
		respond.Error(w, r, apperr.ValidationError("Invalid image").Wrap(err))
		return
	}

	if err := p.pages.UpdateShareMeta(r.Context(), page.ShortID, title, description, siteName, imageURL); err != nil {
		respond.Error(w, r, apperr.Internal(err))
		return
	}
	respond.OK(w, sharePreviewResponse{
		Success:  true,
		Message:  "Share preview settings updated successfully",
		ImageURL: imageURL,
	})
}
