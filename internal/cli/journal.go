package cli

import (
	"github.com/rs/zerolog/log"

	"github.com/SeamusWaldron/cubeview/internal/storage"
)

// startJournal opens the database and starts a session. Journal problems
// are logged and the caller carries on without one.
func startJournal(source string) (*storage.Session, func()) {
	db, err := openDB()
	if err != nil {
		log.Warn().Err(err).Msg("journal disabled")
		return nil, func() {}
	}
	sess, err := db.StartSession(source)
	if err != nil {
		log.Warn().Err(err).Msg("journal disabled")
		db.Close()
		return nil, func() {}
	}
	log.Debug().Str("session", sess.ID).Str("db", db.Path()).Msg("journal started")

	return sess, func() {
		if err := sess.End(); err != nil {
			log.Warn().Err(err).Msg("closing session")
		}
		db.Close()
	}
}
