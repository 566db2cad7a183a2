package api

import (
	"net/http"

	"tripdesk/internal/domain"
	"tripdesk/internal/service/board"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	service board.BoardUseCase
}

func NewBoardHandler(service board.BoardUseCase) *BoardHandler {
	return &BoardHandler{service: service}
}

func (h *BoardHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.load)
	router.GET("/summary", h.summary)
}

type columnResponse struct {
	Stage     domain.StageInfo  `json:"stage"`
	Enquiries []enquiryResponse `json:"enquiries"`
}

func (h *BoardHandler) load(c *gin.Context) {
	columns, err := h.service.LoadBoard(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]columnResponse, 0, len(columns))
	for _, col := range columns {
		out = append(out, columnResponse{
			Stage:     col.Stage,
			Enquiries: toEnquiryResponses(col.Enquiries),
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *BoardHandler) summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
