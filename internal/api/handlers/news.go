package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mahmoodhamdi/scraper-api/internal/domain"
	"github.com/mahmoodhamdi/scraper-api/internal/service"
)

const maxUploadBytes = 10 << 20

var (
	errUnsupportedThumbnail = errors.New("unsupported thumbnail type, expected png, jpg, jpeg, or webp")
	errThumbnailConflict    = errors.New("provide either a thumbnail file or thumbnail_url, not both")
)

type NewsHandler struct {
	newsService *service.NewsService
	uploadDir   string
}

func NewNewsHandler(newsService *service.NewsService, uploadDir string) *NewsHandler {
	return &NewsHandler{newsService: newsService, uploadDir: uploadDir}
}

// NewsRequest is the JSON body for creating an item. Multipart bodies carry
// the same fields plus an optional "thumbnail" file.
type NewsRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Writer       string `json:"writer"`
	ThumbnailURL string `json:"thumbnail_url"`
	NewsLink     string `json:"news_link"`
}

type NewsUpdateRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Writer       *string `json:"writer"`
	ThumbnailURL *string `json:"thumbnail_url"`
	NewsLink     *string `json:"news_link"`
}

func (h *NewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, status, err := h.decodeCreate(r)
	if err != nil {
		if status == http.StatusInternalServerError {
			log.Printf("ERROR [news.Create]: %v", err)
			respondError(w, status, "Internal server error")
			return
		}
		respondError(w, status, err.Error())
		return
	}

	item, err := h.newsService.Create(r.Context(), *input)
	if err != nil {
		if isValidationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("ERROR [news.Create]: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondData(w, http.StatusCreated, "News created successfully", item)
}

func (h *NewsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := newsID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid news id")
		return
	}

	item, err := h.newsService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNewsNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("ERROR [news.Get] id=%d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondData(w, http.StatusOK, "News fetched successfully", item)
}

func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, pagination, err := h.newsService.List(r.Context(), service.NewsListOptions{
		Writer:  r.URL.Query().Get("writer"),
		Search:  r.URL.Query().Get("search"),
		Page:    queryInt(r, "page", 1),
		PerPage: queryInt(r, "per_page", service.DefaultPerPage),
	})
	if err != nil {
		log.Printf("ERROR [news.List]: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if items == nil {
		items = []*domain.News{}
	}
	respondPage(w, http.StatusOK, "News fetched successfully", items, pagination)
}

func (h *NewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := newsID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid news id")
		return
	}

	update, status, err := h.decodeUpdate(r)
	if err != nil {
		if status == http.StatusInternalServerError {
			log.Printf("ERROR [news.Update] id=%d: %v", id, err)
			respondError(w, status, "Internal server error")
			return
		}
		respondError(w, status, err.Error())
		return
	}

	item, err := h.newsService.Update(r.Context(), id, *update)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNewsNotFound):
			respondError(w, http.StatusNotFound, err.Error())
		case isValidationError(err):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("ERROR [news.Update] id=%d: %v", id, err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondData(w, http.StatusOK, "News updated successfully", item)
}

func (h *NewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := newsID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid news id")
		return
	}

	if err := h.newsService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNewsNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("ERROR [news.Delete] id=%d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondData(w, http.StatusOK, "News deleted successfully", nil)
}

func (h *NewsHandler) decodeCreate(r *http.Request) (*service.NewsInput, int, error) {
	if !isMultipart(r) {
		var req NewsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, http.StatusBadRequest, errors.New("invalid request body")
		}
		return &service.NewsInput{
			Title:       req.Title,
			Description: req.Description,
			Writer:      req.Writer,
			Thumbnail:   req.ThumbnailURL,
			NewsLink:    req.NewsLink,
		}, 0, nil
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, http.StatusBadRequest, errors.New("invalid multipart form")
	}

	input := &service.NewsInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Writer:      r.FormValue("writer"),
		Thumbnail:   r.FormValue("thumbnail_url"),
		NewsLink:    r.FormValue("news_link"),
	}

	path, uploaded, status, err := h.receiveThumbnail(r, input.Thumbnail != "")
	if err != nil {
		return nil, status, err
	}
	if uploaded {
		input.Thumbnail = path
		input.ThumbnailUploaded = true
	}
	return input, 0, nil
}

func (h *NewsHandler) decodeUpdate(r *http.Request) (*service.NewsUpdate, int, error) {
	if !isMultipart(r) {
		var req NewsUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, http.StatusBadRequest, errors.New("invalid request body")
		}
		return &service.NewsUpdate{
			Title:       req.Title,
			Description: req.Description,
			Writer:      req.Writer,
			Thumbnail:   req.ThumbnailURL,
			NewsLink:    req.NewsLink,
		}, 0, nil
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, http.StatusBadRequest, errors.New("invalid multipart form")
	}

	update := &service.NewsUpdate{
		Title:       formValue(r, "title"),
		Description: formValue(r, "description"),
		Writer:      formValue(r, "writer"),
		Thumbnail:   formValue(r, "thumbnail_url"),
		NewsLink:    formValue(r, "news_link"),
	}

	path, uploaded, status, err := h.receiveThumbnail(r, update.Thumbnail != nil && *update.Thumbnail != "")
	if err != nil {
		return nil, status, err
	}
	if uploaded {
		update.Thumbnail = &path
		update.ThumbnailUploaded = true
	}
	return update, 0, nil
}

// receiveThumbnail stores an uploaded thumbnail file, if any. hasURL guards
// against sending both a file and a thumbnail_url.
func (h *NewsHandler) receiveThumbnail(r *http.Request, hasURL bool) (string, bool, int, error) {
	file, header, err := r.FormFile("thumbnail")
	switch {
	case err == nil:
	case errors.Is(err, http.ErrMissingFile):
		return "", false, 0, nil
	default:
		return "", false, http.StatusBadRequest, errors.New("invalid thumbnail upload")
	}
	defer file.Close()

	if hasURL {
		return "", false, http.StatusBadRequest, errThumbnailConflict
	}

	path, err := h.saveThumbnail(file, header)
	if err != nil {
		if errors.Is(err, errUnsupportedThumbnail) {
			return "", false, http.StatusBadRequest, err
		}
		return "", false, http.StatusInternalServerError, err
	}
	return path, true, 0, nil
}

func (h *NewsHandler) saveThumbnail(file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp":
	default:
		return "", errUnsupportedThumbnail
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return "/uploads/" + name, nil
}

func newsID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// formValue distinguishes an absent multipart field from an empty one.
func formValue(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	if vals, ok := r.MultipartForm.Value[key]; ok && len(vals) > 0 {
		return &vals[0]
	}
	return nil
}

func isValidationError(err error) bool {
	return errors.Is(err, service.ErrTitleRequired) ||
		errors.Is(err, service.ErrInvalidNewsLink) ||
		errors.Is(err, service.ErrInvalidThumbnail)
}
