package valid

import "time"

func StringPointer(in string) *string {
	return &in
}

func TimePointer(in time.Time) *time.Time {
	return &in
}
