// api/server.go
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/LilVoxy/coursework_dwh/models"
	"github.com/LilVoxy/coursework_dwh/validation"
	"github.com/gorilla/mux"
)

// ErrRunInProgress возвращается, когда батч уже выполняется:
// одновременно допускается не более одного запуска
var ErrRunInProgress = errors.New("пакетная обработка уже выполняется")

// PipelineControl — операции управления пайплайном, доступные по HTTP
type PipelineControl interface {
	// ExecutePipeline запускает полную пакетную обработку
	ExecutePipeline() error

	// ExecuteValidation запускает батарею проверок над текущим содержимым warehouse
	ExecuteValidation() ([]validation.CheckResult, error)

	// RunStats возвращает журнал запусков за период
	RunStats(days int) ([]models.PipelineRunLog, error)
}

// SetupRoutes настраивает маршруты API управления пайплайном
func SetupRoutes(router *mux.Router, control PipelineControl) {
	router.HandleFunc("/api/pipeline/run", RunHandler(control)).Methods("POST")
	router.HandleFunc("/api/pipeline/validate", ValidateHandler(control)).Methods("POST")
	router.HandleFunc("/api/pipeline/status", StatusHandler(control)).Methods("GET")
}

// RunHandler обрабатывает запросы на запуск пакетной обработки
func RunHandler(control PipelineControl) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := control.ExecutePipeline(); err != nil {
			if errors.Is(err, ErrRunInProgress) {
				writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
				return
			}

			log.Printf("Ошибка при выполнении пакетной обработки: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"status": "published"})
	}
}

// ValidateHandler обрабатывает запросы на автономный запуск проверок
func ValidateHandler(control PipelineControl) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := control.ExecuteValidation()
		if err != nil {
			log.Printf("Ошибка при выполнении проверок качества: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"blocking_failures": validation.HasBlockingFailures(results),
			"results":           results,
		})
	}
}

// StatusHandler обрабатывает запросы журнала запусков
func StatusHandler(control PipelineControl) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days := 7
		if raw := r.URL.Query().Get("days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "некорректный параметр days"})
				return
			}
			days = parsed
		}

		stats, err := control.RunStats(days)
		if err != nil {
			log.Printf("Ошибка при получении журнала запусков: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{"runs": stats})
	}
}

// writeJSON сериализует ответ и выставляет заголовки
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Ошибка при сериализации ответа API: %v", err)
	}
}
