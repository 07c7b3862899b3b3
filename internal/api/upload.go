package api

import (
	"fmt"
	"mime/multipart"

	"osisweb/internal/util"

	"github.com/gofiber/fiber/v2"
)

// maxImagesPerRequest caps the multi-image upload fields.
const maxImagesPerRequest = 10

var errTooManyImages = fmt.Errorf("api: more than %d images in one request", maxImagesPerRequest)

// uploadImages stores every file under the multipart field "gambar" and
// returns the public URLs in upload order. The bool is false when the
// request carries no files at all, which update handlers use to keep the
// stored list untouched.
func (h *Handler) uploadImages(c *fiber.Ctx, folder string) ([]string, bool, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, false, nil
	}

	files := form.File["gambar"]
	if len(files) == 0 {
		return nil, false, nil
	}
	if len(files) > maxImagesPerRequest {
		return nil, false, errTooManyImages
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := h.uploadOne(c, folder, file)
		if err != nil {
			return nil, false, err
		}
		urls = append(urls, url)
	}

	return urls, true, nil
}

// uploadPhoto stores the single multipart file "url_foto" when present.
func (h *Handler) uploadPhoto(c *fiber.Ctx, folder string) (string, bool, error) {
	file, err := c.FormFile("url_foto")
	if err != nil {
		return "", false, nil
	}

	url, err := h.uploadOne(c, folder, file)
	if err != nil {
		return "", false, err
	}
	return url, true, nil
}

func (h *Handler) uploadOne(c *fiber.Ctx, folder string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("api: failed to open upload %s: %w", file.Filename, err)
	}
	defer src.Close()

	url, err := h.storage.Upload(c.Context(), folder, file.Filename, src, file.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("api: failed to store upload %s: %w", file.Filename, err)
	}
	return url, nil
}

// formField reports a text field of a multipart form together with its
// presence, so partial updates can tell "absent" from "set to empty".
func formField(form *multipart.Form, key string) util.Optional[string] {
	values, ok := form.Value[key]
	if !ok || len(values) == 0 {
		return util.None[string]()
	}
	return util.Some(values[0])
}
