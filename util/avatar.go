package util

import (
	"fmt"
	"net/url"

	"github.com/navbryce/daily-sns/config"
)

func Avatar(seed string) string {
	return fmt.Sprintf("https://avatars.dicebear.com/api/bottts/%v.svg?size=%v", url.PathEscape(seed), config.AvatarSize)
}
