package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jluoherm/HuffmanCoding/internal/repo"
	"github.com/jluoherm/HuffmanCoding/internal/service"
	"github.com/jluoherm/HuffmanCoding/pkg/huffman"
)

type SessionHandler struct {
	svc *service.CodecService
}

func NewSessionHandler(s *service.CodecService) *SessionHandler {
	return &SessionHandler{svc: s}
}

type encodeReq struct {
	Text string `json:"text"`
}

type decodeReq struct {
	Bits   string `json:"bits"`
	Packed []byte `json:"packed"`
	BitLen int    `json:"bitLen" binding:"gte=0"`
}

type decodeResp struct {
	Text string `json:"text"`
}

func (h *SessionHandler) Create(c *gin.Context) {
	var req encodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s, err := h.svc.Encode(c.Request.Context(), req.Text)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *SessionHandler) GetByID(c *gin.Context) {
	s, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SessionHandler) List(c *gin.Context) {
	sessions, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func (h *SessionHandler) Decode(c *gin.Context) {
	var req decodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	text, err := h.svc.Decode(c.Request.Context(), c.Param("id"), service.DecodeInput{
		Bits:   req.Bits,
		Packed: req.Packed,
		BitLen: req.BitLen,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, decodeResp{Text: text})
}

func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	case errors.Is(err, service.ErrEmptyInput),
		errors.Is(err, service.ErrInputTooLarge),
		errors.Is(err, service.ErrNoBits),
		errors.Is(err, service.ErrAmbiguousBits),
		errors.Is(err, huffman.ErrEmptyAlphabet),
		errors.Is(err, huffman.ErrUnknownSymbol),
		errors.Is(err, huffman.ErrTruncatedCode),
		errors.Is(err, huffman.ErrMalformedCode):
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
