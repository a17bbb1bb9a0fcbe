package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"nse-stock-alert-bot/internal/commands"
	"nse-stock-alert-bot/lib/translation"
)

// NewBot creates new telegram bot
func NewBot(c BotConfig) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(c.Token)
	if err != nil {
		return nil, errors.Wrap(err, "could not create telegram bot")
	}

	bot.Debug = c.Debug

	return &Bot{
		Bot:    bot,
		Config: c,
	}, nil
}

// GetUpdatesChannel gets new updates. The library advances the offset cursor
// past the highest update id seen and long-polls with the configured timeout.
func (b *Bot) GetUpdatesChannel() (tgbotapi.UpdatesChannel, error) {
	updatesConfig := tgbotapi.NewUpdate(0)
	if b.Config.UpdatesTimeout > 0 {
		updatesConfig.Timeout = b.Config.UpdatesTimeout
	}
	updatesConfig.AllowedUpdates = []string{"message"}
	return b.Bot.GetUpdatesChan(updatesConfig), nil
}

// SendMessage sends a telegram message
func (b *Bot) SendMessage(m Message) error {
	msg := tgbotapi.NewMessage(m.ChatID, m.Text)
	msg.ReplyToMessageID = m.MessageID
	msg.DisableWebPagePreview = true
	msg.ParseMode = "HTML"
	_, err := b.Bot.Send(msg)
	return errors.Wrapf(err, "could not send message: %v", m)
}

// Send delivers a plain notification to a chat.
func (b *Bot) Send(chatID int64, text string) error {
	return b.SendMessage(Message{ChatID: chatID, Text: text})
}

// HandleUpdate processes one inbound command and returns exactly one reply.
func (b *Bot) HandleUpdate(u tgbotapi.Update) string {
	log.Debugf("received command: %s", u.Message.Command())

	chatID := u.Message.Chat.ID

	switch u.Message.Command() {
	case "start", "help":
		return commands.CommandHelp()
	case "add":
		return commands.CommandAdd(chatID, u.Message.CommandArguments())
	case "update":
		return commands.CommandUpdate(chatID, u.Message.CommandArguments())
	case "list":
		return commands.CommandList(chatID)
	case "remove":
		return commands.CommandRemove(chatID, u.Message.CommandArguments())
	}

	return translation.Translate("❓ Unknown command. Send /help to see commands.")
}
