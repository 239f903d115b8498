package pgrepo

import (
	"fmt"
	"math"
)

const defaultPageLimit = 50

// safeConvertUintToInt32 безопасно конвертирует uint в int32. В случае выхода значения за рамки диапазона
// выбрасывает ошибку.
func safeConvertUintToInt32(val uint) (int32, error) {
	if val > uint(math.MaxInt32) {
		return 0, fmt.Errorf("value is out of range: %d", val)
	}
	return int32(val), nil
}

// pageArgs возвращает limit и offset для запроса. Нулевой limit заменяется на defaultPageLimit.
func pageArgs(limit, offset uint) (int32, int32, error) {
	if limit == 0 {
		limit = defaultPageLimit
	}
	l, lErr := safeConvertUintToInt32(limit)
	if lErr != nil {
		return 0, 0, lErr
	}
	o, oErr := safeConvertUintToInt32(offset)
	if oErr != nil {
		return 0, 0, oErr
	}
	return l, o, nil
}

func enumStrings[S ~string](values []S) []string {
	res := make([]string, len(values))
	for i, v := range values {
		res[i] = string(v)
	}
	return res
}
