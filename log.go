package rin

import (
	log "github.com/sirupsen/logrus"
)

func logReadError(err error) {
	log.WithFields(log.Fields{"error": err}).Debug("rin: source read failed")
}

func logBadEncoding() {
	log.Debug("rin: malformed utf8 in source, stream invalidated")
}
