package handlers

import (
	"net/http"

	"localpro/services/provider"
	"localpro/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MaxAvatarBytes bounds profile image uploads.
const MaxAvatarBytes = 5 << 20

type ProviderHandler struct {
	Service provider.ProviderService
}

func NewProviderHandler(svc provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{Service: svc}
}

// GetProviderHandler handles GET /api/providers/:id.
func (h *ProviderHandler) GetProviderHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	prov, err := h.Service.GetProfile(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, logger.With(zap.String("providerId", id)), err)
		return
	}
	c.JSON(http.StatusOK, prov)
}

// UpdateAvatarHandler handles PUT /api/providers/me/avatar with a multipart
// "image" field.
func (h *ProviderHandler) UpdateAvatarHandler(c *gin.Context) {
	logger := getLogger(c)
	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, logger, utils.NewFieldError("image", "file not provided"))
		return
	}
	if fileHeader.Size > MaxAvatarBytes {
		utils.RespondError(c, logger, utils.NewFieldError("image", "must be at most 5MB"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, logger, utils.NewInternalError("failed to read upload", err))
		return
	}
	defer file.Close()

	asset, err := h.Service.UpdateAvatar(c.Request.Context(), identity(c).UserID, file)
	if err != nil {
		utils.RespondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profileImage": asset})
}
