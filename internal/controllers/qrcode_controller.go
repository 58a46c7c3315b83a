package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"hbnb/internal/service"
)

const qrCodeSize = 256

type QRCodeController struct {
	facade  service.HBnBFacade
	baseURL string
}

// NewQRCodeController creates a controller encoding links under baseURL (the frontend)
func NewQRCodeController(facade service.HBnBFacade, baseURL string) *QRCodeController {
	return &QRCodeController{
		facade:  facade,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// PlaceURL is the link encoded in a place's QR code
func (qc *QRCodeController) PlaceURL(placeID string) string {
	return qc.baseURL + "/places/" + placeID
}

// PlaceQRCode handles GET /api/v1/places/:place_id/qrcode
func (qc *QRCodeController) PlaceQRCode(c *gin.Context) {
	placeID := c.Param("place_id")
	if _, ok := qc.facade.GetPlace(placeID); !ok {
		notFound(c, "Place")
		return
	}

	pngData, err := qrcode.Encode(qc.PlaceURL(placeID), qrcode.Medium, qrCodeSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code",
		})
		return
	}

	c.Header("Content-Disposition", "inline; filename=place-"+placeID+".png")
	c.Data(http.StatusOK, "image/png", pngData)
}
