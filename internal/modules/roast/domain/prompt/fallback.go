package prompt

import (
	"fmt"
	"strings"

	"RoastMe/internal/modules/roast/domain/entity"
)

// fallbackTemplate 生成失败时使用的固定文案
//
// opening 依次接收 name、age；每个可选字段只有非空时才拼入对应的 clause。
type fallbackTemplate struct {
	opening          string
	occupation       string
	appearance       string
	hobbies          string
	personality      string
	embarrassingFact string
	closing          string
}

var fallbackTemplates = map[entity.Intensity]fallbackTemplate{
	entity.IntensityLight: {
		opening:          "Oh %s, my roasting circuits are taking a little nap, so here's the gentle version: at %s you're clearly still figuring things out, and honestly, that's kind of adorable.",
		occupation:       "Being a %s must keep you busy, or at least busy-looking.",
		appearance:       "The whole '%s' look is a bold choice, and we respect bold choices.",
		hobbies:          "Your love of %s is wholesome enough to make a golden retriever jealous.",
		personality:      "And being %s? That's everyone's favorite flavor of quirky.",
		embarrassingFact: "Don't worry, the '%s' story stays between us. Mostly.",
		closing:          "Stay wonderful, you lovable goofball!",
	},
	entity.IntensityMedium: {
		opening:          "Oh %s, I tried to roast you but even my AI circuits couldn't handle the level of processing power needed to comprehend your unique blend of... let's call it 'character'. The fact that you're %s and still making the life choices that led you here tells me everything I need to know.",
		occupation:       "Working as a %s explains a lot, mostly the sighing.",
		appearance:       "And '%s' is a description, not a style, in case nobody told you.",
		hobbies:          "Listing %s as a hobby is a cry for help we all chose to ignore.",
		personality:      "Calling yourself %s is generous, and we both know it.",
		embarrassingFact: "Also, '%s'? That's not a fun fact, that's a confession.",
		closing:          "At least you're consistent in your commitment to questionable decisions!",
	},
	entity.IntensitySavage: {
		opening:          "%s, my AI crashed trying to roast you, which is honestly the most effort anyone has put into you all year. %s years on this planet and this is the final build?",
		occupation:       "A %s? Even your job title sounds like it's trying to get away from you.",
		appearance:       "Your '%s' look is what mirrors have nightmares about.",
		hobbies:          "You spend your free time on %s, which explains why nobody spends theirs on you.",
		personality:      "You describe yourself as %s, and every witness disagrees.",
		embarrassingFact: "And '%s' isn't even the most embarrassing thing about you, it's just the only one you admitted.",
		closing:          "Even this fallback roast is better than you deserve.",
	},
}

// FallbackText 生成调用失败时按强度返回的固定文案
func FallbackText(u entity.UserData) string {
	tpl, ok := fallbackTemplates[u.RoastIntensity]
	if !ok {
		tpl = fallbackTemplates[entity.DefaultIntensity]
	}

	parts := []string{fmt.Sprintf(tpl.opening, u.Name, u.Age)}
	optional := []struct {
		clause string
		value  string
	}{
		{tpl.occupation, u.Occupation},
		{tpl.appearance, u.Appearance},
		{tpl.hobbies, u.Hobbies},
		{tpl.personality, u.Personality},
		{tpl.embarrassingFact, u.EmbarrassingFact},
	}
	for _, f := range optional {
		if f.value == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf(f.clause, f.value))
	}
	parts = append(parts, tpl.closing)

	return strings.Join(parts, " ")
}
