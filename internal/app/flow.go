package app

import (
	"go.uber.org/zap"

	"github.com/abhisek/interference/internal/config"
	"github.com/abhisek/interference/internal/logging"
	"github.com/abhisek/interference/internal/screen"
	"github.com/abhisek/interference/internal/screens/assessment"
	"github.com/abhisek/interference/internal/screens/followup"
	"github.com/abhisek/interference/internal/screens/intro"
	"github.com/abhisek/interference/internal/screens/result"
	"github.com/abhisek/interference/internal/session"
)

// flow builds the screens of one session. Every screen shares the same
// state, so a reset is visible to whichever screen is built next.
type flow struct {
	state *session.State
	cfg   *config.Config
	log   *zap.Logger
}

// sessionLog tags entries with the current session ID.
func (f *flow) sessionLog() *zap.Logger {
	return logging.Session(f.log, f.state.ID)
}

func (f *flow) intro() screen.Screen {
	return intro.New(f.state, f.sessionLog(), f.assessment)
}

func (f *flow) assessment() screen.Screen {
	return assessment.New(f.state, f.sessionLog(), f.cfg.UI.AllowBack, f.result)
}

func (f *flow) result() screen.Screen {
	return result.New(f.state, f.sessionLog(), f.followUp)
}

func (f *flow) followUp() screen.Screen {
	return followup.New(f.state, f.sessionLog(), f.cfg.Route())
}
