package catalog

import "errors"

var ErrUnknownRoomType = errors.New("unknown room type")
