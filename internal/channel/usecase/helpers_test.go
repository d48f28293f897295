package usecase

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/theflightrs/Speedchannel-Ultimate/config"
	"github.com/theflightrs/Speedchannel-Ultimate/internal/channel/model"
	user "github.com/theflightrs/Speedchannel-Ultimate/internal/user/model"
	"github.com/theflightrs/Speedchannel-Ultimate/pkg/logger"
)

func testLogger() *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func testConfig() *config.Config {
	return &config.Config{
		Channel: config.Channel{
			MaxPerUser:       10,
			NameMaxLen:       50,
			MessagePageSize:  50,
			RetentionDays:    30,
			MaxMessageLength: 4000,
		},
		Upload: config.Upload{
			MaxFileSize:     5 * 1024 * 1024,
			MaxFilesPerMsg:  5,
			AllowedMimeList: []string{"image/png", "image/jpeg", "text/plain", "application/pdf"},
		},
	}
}

func testUser(name string) *user.User {
	return &user.User{ID: uuid.New(), Username: name, IsActive: true}
}

func testAdmin(name string) *user.User {
	u := testUser(name)
	u.IsAdmin = true
	return u
}

func testChannel(creator *user.User, private, discoverable bool) *model.Channel {
	return &model.Channel{
		ID:             uuid.New(),
		Name:           "general",
		CreatorID:      creator.ID,
		IsPrivate:      private,
		IsDiscoverable: private && discoverable,
	}
}
