package bot

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"

	"kinobot/internal/apperrors"
	"kinobot/internal/storage"

	tele "gopkg.in/telebot.v4"
)

// Gateway is the narrow outbound surface the gate and the broadcast engine
// consume. Keeping it small makes both testable with fakes.
type Gateway interface {
	SendText(ctx context.Context, recipient int64, text string, markup *tele.ReplyMarkup) error
	SendMedia(ctx context.Context, recipient int64, kind, fileID, caption string, markup *tele.ReplyMarkup) error
	ChatMemberStatus(ctx context.Context, channelID string, userID int64) (string, error)
	Username() string
}

// TelebotGateway adapts a telebot instance to the Gateway interface. The
// underlying bot is constructed by the runtime after the routes are wired,
// so the gateway is bound late via Bind; handlers only run once it is set.
type TelebotGateway struct {
	bot atomic.Pointer[tele.Bot]
}

// NewGateway creates an unbound gateway.
func NewGateway() *TelebotGateway {
	return &TelebotGateway{}
}

// Bind attaches the running telebot instance.
func (g *TelebotGateway) Bind(bot *tele.Bot) {
	g.bot.Store(bot)
}

func (g *TelebotGateway) current() (*tele.Bot, error) {
	bot := g.bot.Load()
	if bot == nil {
		return nil, apperrors.External("gateway not bound", nil)
	}
	return bot, nil
}

func (g *TelebotGateway) SendText(_ context.Context, recipient int64, text string, markup *tele.ReplyMarkup) error {
	bot, err := g.current()
	if err != nil {
		return err
	}
	if _, err := bot.Send(tele.ChatID(recipient), text, &tele.SendOptions{ReplyMarkup: markup}); err != nil {
		return apperrors.External(fmt.Sprintf("send text to %d", recipient), err)
	}
	return nil
}

func (g *TelebotGateway) SendMedia(_ context.Context, recipient int64, kind, fileID, caption string, markup *tele.ReplyMarkup) error {
	bot, err := g.current()
	if err != nil {
		return err
	}
	var what interface{}
	switch kind {
	case storage.KindPhoto:
		what = &tele.Photo{File: tele.File{FileID: fileID}, Caption: caption}
	case storage.KindVideo:
		what = &tele.Video{File: tele.File{FileID: fileID}, Caption: caption}
	case storage.KindAnimation:
		what = &tele.Animation{File: tele.File{FileID: fileID}, Caption: caption}
	default:
		return apperrors.Validation(fmt.Sprintf("unsupported media kind %q", kind))
	}
	if _, err := bot.Send(tele.ChatID(recipient), what, &tele.SendOptions{ReplyMarkup: markup}); err != nil {
		return apperrors.External(fmt.Sprintf("send %s to %d", kind, recipient), err)
	}
	return nil
}

// ChatMemberStatus resolves the membership status of a user in a channel.
// Channel identifiers are the numeric form (e.g. "-1001234567890"); a
// non-numeric identifier errors, which the gate treats as not joined.
func (g *TelebotGateway) ChatMemberStatus(_ context.Context, channelID string, userID int64) (string, error) {
	bot, err := g.current()
	if err != nil {
		return "", err
	}
	id, err := strconv.ParseInt(channelID, 10, 64)
	if err != nil {
		return "", apperrors.Validation(fmt.Sprintf("channel id %q is not numeric", channelID))
	}
	member, err := bot.ChatMemberOf(&tele.Chat{ID: id}, &tele.User{ID: userID})
	if err != nil {
		return "", apperrors.External(fmt.Sprintf("chat member of %s", channelID), err)
	}
	return string(member.Role), nil
}

func (g *TelebotGateway) Username() string {
	bot := g.bot.Load()
	if bot == nil || bot.Me == nil {
		return ""
	}
	return bot.Me.Username
}
