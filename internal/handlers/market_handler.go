package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nomix/internal/models"
	"nomix/internal/services"
)

// MarketHandler serves the read-only market data endpoints.
type MarketHandler struct {
	marketService services.MarketServicer
	now           func() time.Time
}

// NewMarketHandler creates a new MarketHandler
func NewMarketHandler(marketService services.MarketServicer) *MarketHandler {
	return &MarketHandler{marketService: marketService, now: time.Now}
}

// StockResponse is one daily row as served to clients. Name is set on the
// /stocks listing only.
type StockResponse struct {
	Symbol          string  `json:"symbol"`
	Name            string  `json:"name,omitempty"`
	Date            string  `json:"date" example:"2026-10-19"`
	Last            float64 `json:"last"`
	Open            float64 `json:"open"`
	High            float64 `json:"high"`
	Low             float64 `json:"low"`
	Volume          int64   `json:"volume"`
	PredClose       float64 `json:"pred_close"`
	ConfidenceUpper float64 `json:"confidence_upper"`
	ConfidenceLower float64 `json:"confidence_lower"`
}

// IndexResponse is one daily row of the market index.
type IndexResponse struct {
	Date            string  `json:"date" example:"2026-10-19"`
	Last            float64 `json:"last"`
	Open            float64 `json:"open"`
	High            float64 `json:"high"`
	Low             float64 `json:"low"`
	Volume          int64   `json:"volume"`
	PredClose       float64 `json:"pred_close"`
	ConfidenceUpper float64 `json:"confidence_upper"`
	ConfidenceLower float64 `json:"confidence_lower"`
}

// CompanyResponse is the company page payload.
type CompanyResponse struct {
	Profile      models.Company `json:"profile"`
	LatestMarket *StockResponse `json:"latest_market"`
}

func newStockResponse(s models.Stock) StockResponse {
	return StockResponse{
		Symbol:          s.Symbol,
		Date:            s.Date.UTC().Format(models.DateLayout),
		Last:            s.Last,
		Open:            s.Open,
		High:            s.High,
		Low:             s.Low,
		Volume:          s.Volume,
		PredClose:       s.PredClose,
		ConfidenceUpper: s.ConfidenceUpper,
		ConfidenceLower: s.ConfidenceLower,
	}
}

func newIndexResponse(r *models.IndexRecord) IndexResponse {
	return IndexResponse{
		Date:            r.Date.UTC().Format(models.DateLayout),
		Last:            r.Last,
		Open:            r.Open,
		High:            r.High,
		Low:             r.Low,
		Volume:          r.Volume,
		PredClose:       r.PredClose,
		ConfidenceUpper: r.ConfidenceUpper,
		ConfidenceLower: r.ConfidenceLower,
	}
}

// GetStocks lists every company's row for a day
// @Summary     Daily stock rows
// @Description Rows for every company on the given day, with company names. Defaults to today.
// @Tags        market
// @Produce     json
// @Param       date query string false "Day as YYYY-MM-DD"
// @Success     200 {array}  StockResponse
// @Failure     400 {object} ErrorResponse "Invalid date"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stocks [get]
func (h *MarketHandler) GetStocks(c *gin.Context) {
	date, err := parseDateQuery(c, h.now)
	if err != nil {
		respondWithError(c, err)
		return
	}

	quotes, err := h.marketService.GetStocks(date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := make([]StockResponse, 0, len(quotes))
	for _, q := range quotes {
		r := newStockResponse(q.Stock)
		r.Name = q.Name
		resp = append(resp, r)
	}
	c.JSON(http.StatusOK, resp)
}

// GetIndex returns the index row for a day
// @Summary     Daily index row
// @Description The market index row for the given day. Defaults to today.
// @Tags        market
// @Produce     json
// @Param       date query string false "Day as YYYY-MM-DD"
// @Success     200 {object} IndexResponse
// @Failure     400 {object} ErrorResponse "Invalid date"
// @Failure     404 {object} ErrorResponse "No index row for the day"
// @Router      /index_data [get]
func (h *MarketHandler) GetIndex(c *gin.Context) {
	date, err := parseDateQuery(c, h.now)
	if err != nil {
		respondWithError(c, err)
		return
	}

	record, err := h.marketService.GetIndex(date)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newIndexResponse(record))
}

// ListCompanies returns every company
// @Summary     List companies
// @Tags        market
// @Produce     json
// @Success     200 {array}  models.Company
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /companies [get]
func (h *MarketHandler) ListCompanies(c *gin.Context) {
	companies, err := h.marketService.ListCompanies()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// GetCompany returns a company's profile and latest row
// @Summary     Company profile
// @Tags        market
// @Produce     json
// @Param       symbol path string true "Ticker symbol"
// @Success     200 {object} CompanyResponse
// @Failure     404 {object} ErrorResponse "Company not found"
// @Router      /company/{symbol} [get]
func (h *MarketHandler) GetCompany(c *gin.Context) {
	profile, err := h.marketService.GetCompanyProfile(c.Param("symbol"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := CompanyResponse{Profile: profile.Company}
	if profile.Latest != nil {
		latest := newStockResponse(*profile.Latest)
		resp.LatestMarket = &latest
	}
	c.JSON(http.StatusOK, resp)
}

// GetCompanyGraph returns a company's full history
// @Summary     Company price history
// @Description All rows for the company in ascending date order.
// @Tags        market
// @Produce     json
// @Param       symbol path string true "Ticker symbol"
// @Success     200 {array}  StockResponse
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /company/{symbol}/graph [get]
func (h *MarketHandler) GetCompanyGraph(c *gin.Context) {
	history, err := h.marketService.GetCompanyHistory(c.Param("symbol"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := make([]StockResponse, 0, len(history))
	for _, s := range history {
		resp = append(resp, newStockResponse(s))
	}
	c.JSON(http.StatusOK, resp)
}
