package handlers

import (
	"errors"

	"github.com/Lucas-Veillard/KanalBack/store"
	"github.com/Lucas-Veillard/KanalBack/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Handler porte le handle store injecté au démarrage. Pas de global.
type Handler struct {
	Store    *store.Store
	validate *validator.Validate
}

func New(s *store.Store) *Handler {
	return &Handler{
		Store:    s,
		validate: validator.New(),
	}
}

type createMessageRequest struct {
	UserID      string `json:"user_id" validate:"required,min=1,max=100"`
	Content     string `json:"content" validate:"required,min=1,max=2000"`
	ClientKey   string `json:"client_key" validate:"omitempty,min=1,max=100"`
	Consistency string `json:"consistency"`
}

// PostMessage gère POST /api/channels/:channelId/messages.
// 201 Accepted avec l'id généré, ou 200 quand la clé client a déjà servi
// (la déduplication est un résultat, pas une erreur).
func (h *Handler) PostMessage(c *fiber.Ctx) error {
	channelID := c.Params("channelId")
	if len(channelID) < 1 || len(channelID) > 100 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "ID de canal invalide."})
	}

	var reqBody createMessageRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Données invalides."})
	}
	if err := h.validate.Struct(reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Champs invalides.", "details": err.Error()})
	}

	result, err := h.Store.AppendMessage(c.Context(), store.AppendRequest{
		ChannelID:   channelID,
		UserID:      reqBody.UserID,
		Content:     reqBody.Content,
		ClientKey:   reqBody.ClientKey,
		Consistency: reqBody.Consistency,
	})
	if err != nil {
		return storeErrorResponse(c, err)
	}

	if result.Deduplicated {
		resp := fiber.Map{"status": "deduplicated"}
		if result.Warning != "" {
			resp["warning"] = result.Warning
		}
		return c.Status(fiber.StatusOK).JSON(resp)
	}

	resp := fiber.Map{
		"status":     "accepted",
		"message_id": result.MessageID.String(),
		"created_at": result.CreatedAt,
	}
	if result.Warning != "" {
		resp["warning"] = result.Warning
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetMessages gère GET /api/channels/:channelId/messages.
// Pagination keyset : ?limit=&before=&after=&consistency=. La réponse porte
// next_before (null si page vide) à repasser en 'before' pour continuer vers
// le plus ancien.
func (h *Handler) GetMessages(c *fiber.Ctx) error {
	channelID := c.Params("channelId")
	if len(channelID) < 1 || len(channelID) > 100 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "ID de canal invalide."})
	}

	result, err := h.Store.ListMessages(c.Context(), store.ListRequest{
		ChannelID:   channelID,
		Limit:       c.QueryInt("limit", 50),
		Before:      c.Query("before"),
		After:       c.Query("after"),
		Consistency: c.Query("consistency"),
	})
	if err != nil {
		return storeErrorResponse(c, err)
	}

	resp := fiber.Map{
		"messages":    result.Messages,
		"next_before": nil,
	}
	if result.NextBefore != nil {
		resp["next_before"] = result.NextBefore.String()
	}
	if result.Warning != "" {
		resp["warning"] = result.Warning
	}
	return c.JSON(resp)
}

// storeErrorResponse applique la taxonomie du store sur les statuts HTTP :
// ValidationError → 400, StorageUnavailable → 503, NotInitialized → 500.
func storeErrorResponse(c *fiber.Ctx, err error) error {
	var validationErr *store.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": validationErr.Error()})
	}

	var unavailableErr *store.StorageUnavailableError
	if errors.As(err, &unavailableErr) {
		utils.Warn("Stockage indisponible", "error", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "Stockage indisponible, réessayez plus tard."})
	}

	if errors.Is(err, store.ErrNotInitialized) {
		utils.Error("Store non initialisé", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erreur interne."})
	}

	utils.Error("Erreur storage inattendue", "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Erreur interne."})
}
