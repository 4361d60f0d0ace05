package api

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"album-backend/internal/auth"
	"album-backend/internal/database"
	"album-backend/internal/models"
	"album-backend/internal/storage"
)

// Maximum upload size (1MB)
const maxUploadSize = 1024 * 1024

// Request body cap for POST /file, enforced before the multipart form is
// parsed. Well above the per-file maximum so a maximal file plus its form
// framing still fits, while an oversized transfer is cut off instead of
// buffered in full.
const uploadBodyLimit = "2M"

// uploadHandler handles POST /file. Format and size are checked before any
// bytes are persisted; the metadata row is only inserted after the blob is
// fully stored, and the blob is removed again if the insert fails.
func uploadHandler(c echo.Context) error {
	username := auth.UsernameFromContext(c)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return fail(c, http.StatusBadRequest, "image field is required")
	}

	if fileHeader.Size > maxUploadSize {
		return fail(c, http.StatusBadRequest, "file too large")
	}

	if !strings.Contains(fileHeader.Header.Get(echo.HeaderContentType), "image") {
		return fail(c, http.StatusBadRequest, "unsupported file format")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return serverError(c, "open upload", err)
	}
	defer src.Close()

	name, err := blobStore.Store(src, filepath.Ext(fileHeader.Filename))
	if err != nil {
		return serverError(c, "store upload", err)
	}

	asset, err := assetRepo.Create(username, c.FormValue("description"), name)
	if err != nil {
		// Keep the blob and the record all-or-nothing
		if rmErr := blobStore.Remove(name); rmErr != nil {
			c.Logger().Error("remove orphaned blob error: ", rmErr)
		}

		var ve *database.ValidationError
		if errors.As(err, &ve) {
			return fail(c, http.StatusBadRequest, ve.Error())
		}
		return serverError(c, "create asset", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"msg":     "",
		"name":    name,
		"id":      asset.ID,
	})
}

// serveFileHandler handles GET /file/:name. Local blobs are served
// directly; remote blobs redirect the client to the public URL.
func serveFileHandler(c echo.Context) error {
	location, err := blobStore.Locate(c.Param("name"))
	if err != nil {
		if errors.Is(err, storage.ErrBlobNotFound) {
			return fail(c, http.StatusNotFound, "image not found")
		}
		return serverError(c, "locate blob", err)
	}

	if location.URL != "" {
		return c.Redirect(http.StatusFound, location.URL)
	}

	return c.File(location.Path)
}

// albumHandler handles GET /album/:user
func albumHandler(c echo.Context) error {
	username := auth.UsernameFromContext(c)
	if c.Param("user") != username {
		return fail(c, http.StatusForbidden, "permission denied")
	}

	assets, err := assetRepo.ListByOwner(username)
	if err != nil {
		return serverError(c, "list assets", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"msg":     "",
		"result":  assets,
	})
}

// updateAssetHandler handles PATCH /file/:id
func updateAssetHandler(c echo.Context) error {
	asset, err := ownedAsset(c)
	if asset == nil {
		return err
	}

	var req models.UpdateAssetRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	updated, err := assetRepo.Update(asset.ID, req.Description)
	if err != nil {
		var ve *database.ValidationError
		switch {
		case errors.As(err, &ve):
			return fail(c, http.StatusBadRequest, ve.Error())
		case errors.Is(err, database.ErrAssetNotFound):
			return fail(c, http.StatusNotFound, "asset not found")
		default:
			return serverError(c, "update asset", err)
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"msg":     "",
		"result":  updated,
	})
}

// deleteAssetHandler handles DELETE /file/:id
func deleteAssetHandler(c echo.Context) error {
	asset, err := ownedAsset(c)
	if asset == nil {
		return err
	}

	deleted, err := assetRepo.Delete(asset.ID)
	if err != nil {
		if errors.Is(err, database.ErrAssetNotFound) {
			return fail(c, http.StatusNotFound, "asset not found")
		}
		return serverError(c, "delete asset", err)
	}

	// The record is gone; a stuck blob is logged, not surfaced
	if err := blobStore.Remove(deleted.Name); err != nil && !errors.Is(err, storage.ErrBlobNotFound) {
		c.Logger().Error("remove blob error: ", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"msg":     "",
		"result":  deleted,
	})
}

// ownedAsset loads the asset at :id and enforces that the session user owns
// it. On failure the response has already been written and the asset is nil.
func ownedAsset(c echo.Context) (*models.Asset, error) {
	asset, err := assetRepo.GetByID(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, database.ErrMalformedID):
			return nil, fail(c, http.StatusBadRequest, "malformed id")
		case errors.Is(err, database.ErrAssetNotFound):
			return nil, fail(c, http.StatusNotFound, "asset not found")
		default:
			return nil, serverError(c, "get asset", err)
		}
	}

	if asset.Owner != auth.UsernameFromContext(c) {
		return nil, fail(c, http.StatusForbidden, "permission denied")
	}

	return asset, nil
}
