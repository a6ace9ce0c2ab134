package game

import (
	"regexp"

	petname "github.com/dustinkirkland/golang-petname"
)

const (
	CommandQueueSize = 10
	MaxNicknameSize  = 10
)

var nickRegexp = regexp.MustCompile(`[^a-zA-Z0-9_\-!@#$%^&*+=,./]+`)

// Nickname strips unsupported characters from nick and truncates it. An
// empty result is replaced by a generated name.
func Nickname(nick string) string {
	nick = nickRegexp.ReplaceAllString(nick, "")
	if len(nick) > MaxNicknameSize {
		nick = nick[:MaxNicknameSize]
	} else if nick == "" {
		nick = randomNickname()
	}

	return nick
}

func randomNickname() string {
	for {
		nick := petname.Generate(1, "")
		if len(nick) <= MaxNicknameSize && !nickRegexp.MatchString(nick) {
			return nick
		}
	}
}
