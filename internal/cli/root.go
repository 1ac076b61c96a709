package cli

import (
	"github.com/iksdev/habita/internal/logger"
	"github.com/iksdev/habita/internal/models"
	"github.com/iksdev/habita/internal/storage"
	"github.com/iksdev/habita/internal/utils"
)

type Context struct {
	Store storage.Provider
	Debug bool
}

// Today resolves today's date in the user's configured timezone, falling back
// to the system timezone when no profile exists or its timezone is invalid.
func (c *Context) Today(snap models.Snapshot) string {
	if snap.User != nil && snap.User.Timezone != "" {
		day, err := utils.TodayInTimezone(snap.User.Timezone)
		if err == nil {
			return day
		}
		logger.Warn("Falling back to system timezone", "timezone", snap.User.Timezone, "error", err)
	}
	return utils.Today()
}
