package notifier

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/playforge/gamify-api/internal/models"
)

type Notifier interface {
	NotifyPrizeGrant(player models.Player, level models.Level, prize models.Prize) error
}

type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(session *discordgo.Session, channelID string) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}
}

func (n *DiscordNotifier) NotifyPrizeGrant(player models.Player, level models.Level, prize models.Prize) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	message := fmt.Sprintf("🏆 **Prize Granted**\n**Player:** %s\n**Level:** %s\n**Prize:** %s",
		player.Username,
		level.Title,
		prize.Title,
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}
