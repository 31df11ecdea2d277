package command

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// RespondEphemeral sends a short fixed-text reply visible only to the
// invoking user. All skull command acknowledgments go through here.
func RespondEphemeral(s *discordgo.Session, e *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(e.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Println("[ERR] Failed to respond to interaction:", err)
	}
}
