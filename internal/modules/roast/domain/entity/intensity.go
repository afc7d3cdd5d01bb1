package entity

import (
	"fmt"
	"strings"
)

// Intensity 吐槽强度，只有三个取值
type Intensity string

const (
	IntensityLight  Intensity = "light"
	IntensityMedium Intensity = "medium"
	IntensitySavage Intensity = "savage"

	DefaultIntensity = IntensityMedium
)

// Intensities 按从轻到重排列
var Intensities = []Intensity{IntensityLight, IntensityMedium, IntensitySavage}

// ParseIntensity 空字符串解析为默认强度，其余非法值返回错误
func ParseIntensity(s string) (Intensity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultIntensity, nil
	}
	i := Intensity(s)
	if !i.IsValid() {
		return "", fmt.Errorf("invalid roast intensity %q", s)
	}
	return i, nil
}

func (i Intensity) IsValid() bool {
	switch i {
	case IntensityLight, IntensityMedium, IntensitySavage:
		return true
	}
	return false
}

func (i Intensity) String() string {
	return string(i)
}
