package httpserver

import (
	"bufio"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// FileHandler administers the CSV files in the primary catalog directory.
type FileHandler struct {
	dataDir string
	logger  *slog.Logger
}

func NewFileHandler(dataDir string, logger *slog.Logger) *FileHandler {
	return &FileHandler{dataDir: dataDir, logger: logger}
}

func (h *FileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/files", h.list)            // GET /api/admin/files
	rg.POST("/files", h.upload)         // POST /api/admin/files
	rg.DELETE("/files/:name", h.delete) // DELETE /api/admin/files/:name
}

// fileInfo describes one CSV file in the catalog directory.
type fileInfo struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	Records      int       `json:"records"`
	LastModified time.Time `json:"lastModified"`
}

func (h *FileHandler) list(c *gin.Context) {
	entries, err := os.ReadDir(h.dataDir)
	if err != nil {
		h.logger.Error("failed to read catalog dir", "dir", h.dataDir, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list files"})
		return
	}

	files := []fileInfo{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".csv") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, fileInfo{
			Name:         entry.Name(),
			Size:         info.Size(),
			Records:      countRecords(filepath.Join(h.dataDir, entry.Name())),
			LastModified: info.ModTime(),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	c.JSON(http.StatusOK, files)
}

func (h *FileHandler) upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}

	name := filepath.Base(file.Filename)
	if !validCsvName(name) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only CSV files are allowed"})
		return
	}

	if err := c.SaveUploadedFile(file, filepath.Join(h.dataDir, name)); err != nil {
		h.logger.Error("failed to save uploaded file", "file", name, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file"})
		return
	}

	h.logger.Info("csv file uploaded", "file", name, "size", file.Size)
	c.JSON(http.StatusOK, gin.H{
		"message":  "file uploaded successfully",
		"filename": name,
	})
}

func (h *FileHandler) delete(c *gin.Context) {
	name := c.Param("name")
	if !validCsvName(name) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filename"})
		return
	}

	path := filepath.Join(h.dataDir, name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	if err := os.Remove(path); err != nil {
		h.logger.Error("failed to delete file", "file", name, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete file"})
		return
	}

	h.logger.Info("csv file deleted", "file", name)
	c.JSON(http.StatusOK, gin.H{
		"message":  "file deleted successfully",
		"filename": name,
	})
}

// validCsvName rejects path traversal and non-CSV names.
func validCsvName(name string) bool {
	if name == "" || name != filepath.Base(name) {
		return false
	}
	if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		return false
	}
	return strings.HasSuffix(strings.ToLower(name), ".csv")
}

// countRecords counts non-empty lines minus the header row.
func countRecords(path string) int {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()

	lines := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "" {
			lines++
		}
	}
	if lines > 0 {
		return lines - 1
	}
	return 0
}
