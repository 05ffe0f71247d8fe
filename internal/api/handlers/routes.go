package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"route-optimizer-service/internal/api/dto"
	"route-optimizer-service/internal/domain"
	"route-optimizer-service/internal/platform/metrics"
	"route-optimizer-service/internal/ports"
)

// RouteHandler exposes the optimization engine over HTTP.
// Cache and History are optional collaborators; a nil value disables the
// concern without changing response semantics (the engine is deterministic,
// so cached and freshly computed responses are identical).
type RouteHandler struct {
	Finder    ports.RouteFinder
	Cache     ports.ResultCache
	History   ports.RouteLog
	MaxOrders int
	CacheTTL  time.Duration

	// Engine configuration, folded into cache keys so a restart with a
	// different speed or radius cannot serve stale totals.
	SpeedKmph float64
	RadiusKm  float64
}

// FindRoute computes the minimum-time visiting order for one batch of orders.
// Validation lives entirely here: the engine below this boundary assumes
// well-formed input and performs no defensive checks.
func (h *RouteHandler) FindRoute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	source, orders, err := h.toDomain(req)
	if err != nil {
		metrics.Optimizations.WithLabelValues("rejected").Inc()
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	key := h.requestHash(req)

	if h.Cache != nil {
		if payload, err := h.Cache.Get(r.Context(), key); err == nil {
			metrics.Optimizations.WithLabelValues("cached").Inc()
			writeRawJSON(w, r, http.StatusOK, payload)
			return
		} else if !errors.Is(err, ports.ErrCacheMiss) {
			// Degraded cache must not fail the request.
			log.Printf("result cache get failed: key=%s err=%v", key, err)
		}
	}

	start := time.Now()
	bestPath, totalMins := h.Finder.BestRoute(source, orders)
	elapsed := time.Since(start)

	metrics.Optimizations.WithLabelValues("computed").Inc()
	metrics.OptimizeDuration.Observe(elapsed.Seconds())
	metrics.CandidatePaths.Observe(candidateCount(len(orders)))

	res := dto.RouteResponse{BestPath: bestPath, TotalTimeMins: totalMins}

	payload, err := json.Marshal(res)
	if err != nil {
		log.Printf("marshal route response failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if h.Cache != nil {
		if err := h.Cache.Set(r.Context(), key, payload, h.CacheTTL); err != nil {
			log.Printf("result cache set failed: key=%s err=%v", key, err)
		}
	}

	if h.History != nil {
		rec := domain.RouteRecord{
			RequestHash:   key,
			SourceID:      source.ID,
			OrderCount:    len(orders),
			BestPath:      bestPath,
			TotalTimeMins: totalMins,
			ComputedAt:    time.Now().UTC(),
		}
		if err := h.History.SaveRoute(r.Context(), rec); err != nil {
			log.Printf("route history save failed: hash=%s err=%v", key, err)
		}
	}

	writeRawJSON(w, r, http.StatusOK, payload)
}

// Recent lists the latest computed routes from the history log.
func (h *RouteHandler) Recent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if h.History == nil {
		writeError(w, r, http.StatusServiceUnavailable, "route history is not configured")
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := parsePositiveInt(v, 100)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "limit must be an integer between 1 and 100")
			return
		}
		limit = n
	}

	records, err := h.History.RecentRoutes(r.Context(), limit)
	if err != nil {
		log.Printf("recent routes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListRecentRoutesResponse{Routes: make([]dto.RecentRouteResponse, 0, len(records))}
	for _, rec := range records {
		res.Routes = append(res.Routes, dto.RecentRouteResponse{
			SourceID:      rec.SourceID,
			OrderCount:    rec.OrderCount,
			BestPath:      rec.BestPath,
			TotalTimeMins: rec.TotalTimeMins,
			ComputedAt:    rec.ComputedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// toDomain validates the request and builds engine input. Identifiers must be
// unique across the source and every pickup/drop-off in the batch; the engine
// keys its travel matrix by id and would silently collapse duplicates.
func (h *RouteHandler) toDomain(req dto.RouteRequest) (domain.Location, []domain.Order, error) {
	if len(req.Orders) > h.MaxOrders {
		return domain.Location{}, nil, errors.New("too many orders for exact optimization")
	}

	source, err := domain.NewLocation(req.Source.ID, req.Source.Lat, req.Source.Lon)
	if err != nil {
		return domain.Location{}, nil, err
	}

	seen := map[string]struct{}{source.ID: {}}
	orders := make([]domain.Order, 0, len(req.Orders))

	for _, o := range req.Orders {
		restaurant, err := domain.NewLocation(o.Restaurant.ID, o.Restaurant.Lat, o.Restaurant.Lon)
		if err != nil {
			return domain.Location{}, nil, err
		}
		customer, err := domain.NewLocation(o.Customer.ID, o.Customer.Lat, o.Customer.Lon)
		if err != nil {
			return domain.Location{}, nil, err
		}

		for _, id := range []string{restaurant.ID, customer.ID} {
			if _, dup := seen[id]; dup {
				return domain.Location{}, nil, errors.New("duplicate location id: " + id)
			}
			seen[id] = struct{}{}
		}

		order, err := domain.NewOrder(restaurant, customer, o.PrepTimeMins)
		if err != nil {
			return domain.Location{}, nil, err
		}
		orders = append(orders, order)
	}

	return source, orders, nil
}

// requestHash derives a stable cache key from the request and the engine
// configuration it would be answered under.
func (h *RouteHandler) requestHash(req dto.RouteRequest) string {
	keyed := struct {
		SpeedKmph float64          `json:"speed_kmph"`
		RadiusKm  float64          `json:"radius_km"`
		Request   dto.RouteRequest `json:"request"`
	}{h.SpeedKmph, h.RadiusKm, req}

	// Field order is fixed by the struct, so marshaling is deterministic.
	raw, err := json.Marshal(keyed)
	if err != nil {
		return ""
	}

	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// candidateCount returns (2n)!/2^n as a float for metrics observation.
func candidateCount(n int) float64 {
	count := 1.0
	for i := 2; i <= 2*n; i++ {
		count *= float64(i)
	}
	for i := 0; i < n; i++ {
		count /= 2
	}
	return count
}
