package attendance

import (
	"encoding/json"
	"net/http"
	"time"

	attendanceerrors "go-attend/internal/attendance/errors"
	"go-attend/internal/shared/apperror"
	"go-attend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const summaryCacheTTL = 5 * time.Minute

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// releaseLock drops the idempotency in-flight lock once the handler
// has produced a response (cached or not).
func (h *Handler) releaseLock(c *gin.Context) {
	if h.rdb == nil {
		return
	}
	if lk, ok := c.Get("idempotency_lock_key"); ok {
		if key, ok := lk.(string); ok && key != "" {
			h.rdb.Del(c.Request.Context(), key)
		}
	}
}

func (h *Handler) cacheResponse(c *gin.Context, resp any) {
	if h.rdb == nil {
		return
	}
	if ck, ok := c.Get("idempotency_cache_key"); ok {
		if key, ok := ck.(string); ok && key != "" {
			if payload, err := json.Marshal(resp); err == nil {
				_ = h.rdb.Set(c.Request.Context(), key, payload, 24*time.Hour).Err()
			}
		}
	}
}

func (h *Handler) AddManual(c *gin.Context) {
	defer h.releaseLock(c)

	var req AddManualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	actorID := c.GetString("user_id_validated")
	resp, err := h.service.AddManual(c.Request.Context(), actorID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.cacheResponse(c, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// ClockIn and ClockOut act on the caller's own employee id taken from
// the token, never from the request body.
func (h *Handler) ClockIn(c *gin.Context) {
	defer h.releaseLock(c)

	resp, err := h.service.ClockIn(c.Request.Context(), c.GetString("employee_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.cacheResponse(c, resp)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ClockOut(c *gin.Context) {
	defer h.releaseLock(c)

	resp, err := h.service.ClockOut(c.Request.Context(), c.GetString("employee_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.cacheResponse(c, resp)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) Archive(c *gin.Context) {
	resp, err := h.service.SetArchived(c.Request.Context(), c.Param("id"), true)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Unarchive(c *gin.Context) {
	resp, err := h.service.SetArchived(c.Request.Context(), c.Param("id"), false)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, &response.PaginationMeta{Total: int64(len(resp))})
}

// DailySummary reads through a short-lived redis cache; the counts
// only move on new punches, so slightly stale numbers are acceptable.
func (h *Handler) DailySummary(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		writeServiceError(c, attendanceerrors.ErrInvalidDateFormat)
		return
	}

	cacheKey := "attendance:summary:" + date
	if h.rdb != nil {
		if cached, err := h.rdb.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			var resp DailySummaryResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				response.Success(c, http.StatusOK, resp, nil)
				return
			}
		}
	}

	resp, err := h.service.DailySummary(c.Request.Context(), date)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		if payload, err := json.Marshal(resp); err == nil {
			_ = h.rdb.Set(c.Request.Context(), cacheKey, payload, summaryCacheTTL).Err()
		}
	}
	response.Success(c, http.StatusOK, resp, nil)
}
