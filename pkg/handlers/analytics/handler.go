package analytics

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/bo-tools/sales-atlas/pkg/adapters"
	"github.com/bo-tools/sales-atlas/pkg/models/api"
	"github.com/bo-tools/sales-atlas/pkg/models/domain"
	"github.com/bo-tools/sales-atlas/pkg/services/report"
	"github.com/rs/zerolog"
)

const (
	dateLayout = "2006-01-02"

	// Default trailing windows, in days.
	defaultSalesWindow = 30
	defaultTrendWindow = 365

	defaultTopItemsLimit = 10
)

type Handler struct {
	reports report.Service
	now     func() time.Time
}

func NewHandler(reports report.Service) *Handler {
	return &Handler{
		reports: reports,
		now:     time.Now,
	}
}

func (h *Handler) GetSales(w http.ResponseWriter, r *http.Request) {
	start, end, err := h.parseWindow(r, defaultSalesWindow)
	if err != nil {
		respondError(w, r, err)
		return
	}

	result, err := h.reports.SalesByCompany(r.Context(), start, end)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, adapters.MapSalesReportDomainToApi(result))
}

func (h *Handler) GetInventory(w http.ResponseWriter, r *http.Request) {
	result, err := h.reports.Inventory(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, adapters.MapInventoryReportDomainToApi(result))
}

func (h *Handler) GetProfit(w http.ResponseWriter, r *http.Request) {
	start, end, err := h.parseWindow(r, defaultSalesWindow)
	if err != nil {
		respondError(w, r, err)
		return
	}

	result, err := h.reports.Profit(r.Context(), start, end)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, adapters.MapProfitReportDomainToApi(result))
}

func (h *Handler) GetTrends(w http.ResponseWriter, r *http.Request) {
	start, end, err := h.parseWindow(r, defaultTrendWindow)
	if err != nil {
		respondError(w, r, err)
		return
	}

	result, err := h.reports.MonthlyTrends(r.Context(), start, end)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, adapters.MapTrendReportDomainToApi(result))
}

func (h *Handler) GetTopItems(w http.ResponseWriter, r *http.Request) {
	start, end, err := h.parseWindow(r, defaultTrendWindow)
	if err != nil {
		respondError(w, r, err)
		return
	}
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	result, err := h.reports.TopItems(r.Context(), start, end, limit)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, adapters.MapTopItemsReportDomainToApi(result))
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.reports.Dashboard(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, adapters.MapDashboardDomainToApi(result))
}

func (h *Handler) GetHourly(w http.ResponseWriter, r *http.Request) {
	result, err := h.reports.HourlySeries(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, adapters.MapHourlySeriesDomainToApi(result))
}

func (h *Handler) GetBrandSales(w http.ResponseWriter, r *http.Request) {
	result, err := h.reports.BrandSales(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, adapters.MapBrandSalesDomainToApi(result))
}

func (h *Handler) GetBrandPopularity(w http.ResponseWriter, r *http.Request) {
	result, err := h.reports.BrandPopularity(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, adapters.MapBrandPopularityDomainToApi(result))
}

func (h *Handler) GetBrandAverages(w http.ResponseWriter, r *http.Request) {
	period, err := domain.ParseBucketPeriod(r.URL.Query().Get("period"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	result, err := h.reports.BrandAverages(r.Context(), period)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, adapters.MapBrandAveragesDomainToApi(result))
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.reports.Ping(r.Context()); err != nil {
		respondError(w, r, fmt.Errorf("store unreachable: %w", err))
		return
	}
	respondJSON(w, r, map[string]string{"status": "ok"})
}

// parseWindow reads the optional start_date/end_date pair, falling back to a
// trailing window ending now. A malformed date is an input error, distinct
// from "no data".
func (h *Handler) parseWindow(r *http.Request, defaultDays int) (time.Time, time.Time, error) {
	end := h.now()
	if raw := r.URL.Query().Get("end_date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf(
				"%w: invalid end_date %q, expected YYYY-MM-DD", domain.ErrInvalidInput, raw)
		}
		end = parsed
	}

	start := end.AddDate(0, 0, -defaultDays)
	if raw := r.URL.Query().Get("start_date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf(
				"%w: invalid start_date %q, expected YYYY-MM-DD", domain.ErrInvalidInput, raw)
		}
		start = parsed
	}

	return start, end, nil
}

func parseLimit(raw string) (int, error) {
	if raw == "" {
		return defaultTopItemsLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, fmt.Errorf("%w: limit must be a positive integer, got %q", domain.ErrInvalidInput, raw)
	}
	return limit, nil
}

func respondJSON(w http.ResponseWriter, r *http.Request, body any) {
	logger := zerolog.Ctx(r.Context())
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

// respondError maps the two caller-visible error kinds: invalid input is a
// 400, anything else a 500 with the raw message, which is acceptable for an
// internal admin tool.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())

	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrInvalidInput) {
		status = http.StatusBadRequest
	} else {
		logger.Error().Err(err).Msg("report computation failed")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(api.Error{Error: err.Error()}); encErr != nil {
		logger.Error().Err(encErr).Msg("failed to encode error response")
	}
}
