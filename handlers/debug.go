// Fichier : handlers/debug.go

package handlers

import (
	"fmt"
	"math/rand"

	"github.com/Lucas-Veillard/KanalBack/config"
	"github.com/Lucas-Veillard/KanalBack/models"
	"github.com/Lucas-Veillard/KanalBack/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ✅ Profils de test pour le seeder
var sampleUsers = []string{
	uuid.NewString(),
	uuid.NewString(),
	uuid.NewString(),
	uuid.NewString(),
	uuid.NewString(),
}

var sampleMessages = []string{
	"Salut tout le monde ! Comment ça va ?",
	"Quelqu'un a vu le dernier épisode de la série XYZ ?",
	"Je suis en train de travailler sur le DevOps, c'est passionnant.",
	"On se fait une partie ce soir ?",
	"Regardez ce que j'ai trouvé : https://example.com",
	"Le build a encore échoué...",
	"J'ai une question sur le front-end React.",
	"La base de données ScyllaDB est vraiment performante.",
	"Bon week-end à tous !",
}

func requireDebugToken(c *fiber.Ctx) bool {
	token := config.GetConfig().DebugToken
	return token != "" && c.Get("Authorization") == "Bearer "+token
}

// SeedChannelWithMessages est un handler de debug pour remplir un canal avec
// des messages. Les ids passent par le générateur du store, donc l'ordre des
// messages suit l'ordre d'insertion.
func (h *Handler) SeedChannelWithMessages(c *fiber.Ctx) error {
	// --- ÉTAPE 1: Vérification du token ---
	if !requireDebugToken(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Token invalide."})
	}

	// --- ÉTAPE 2: Validation des paramètres ---
	channelID := c.Params("channelId")
	if len(channelID) < 1 || len(channelID) > 100 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "ID de canal invalide."})
	}

	count := c.QueryInt("count", 1000)

	utils.Info(fmt.Sprintf("Début du seeding de %d messages pour le canal %s", count, channelID))

	// --- ÉTAPE 3: Insertion séquentielle via le store ---
	level := h.Store.WriteLevel()
	for i := 0; i < count; i++ {
		id := h.Store.NextID()
		msg := models.Message{
			ChannelID: channelID,
			MessageID: id,
			UserID:    sampleUsers[rand.Intn(len(sampleUsers))],
			Content:   sampleMessages[rand.Intn(len(sampleMessages))],
		}
		if err := h.Store.AppendRaw(c.Context(), msg, level); err != nil {
			utils.Error("Erreur lors du seeding", "error", err, "index", i)
			return storeErrorResponse(c, err)
		}
		if (i+1)%1000 == 0 {
			utils.Info(fmt.Sprintf("%d messages sur %d insérés...", i+1, count))
		}
	}

	utils.Success("Seeding terminé !")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": fmt.Sprintf("%d messages ont été créés dans le canal %s", count, channelID),
	})
}

// ReleaseDedupKey libère une clé d'idempotence orpheline (claim posé mais
// message jamais écrit, cf. la fenêtre claim/insert). Chemin opérationnel,
// pas exposé aux clients.
func (h *Handler) ReleaseDedupKey(c *fiber.Ctx) error {
	if !requireDebugToken(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Token invalide."})
	}

	channelID := c.Params("channelId")
	clientKey := c.Params("clientKey")
	if channelID == "" || clientKey == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Paramètres invalides."})
	}

	if err := h.Store.ReleaseClaim(c.Context(), channelID, clientKey); err != nil {
		return storeErrorResponse(c, err)
	}

	utils.Info("Clé d'idempotence libérée", "channel_id", channelID, "client_key", clientKey)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Clé libérée."})
}
