package fastscan

import (
	log "github.com/sirupsen/logrus"
)

func logError(message string, err error) {
	log.WithFields(log.Fields{"error": err}).Error(message)
}
