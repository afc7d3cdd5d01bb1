package prompt

import (
	"fmt"
	"strings"

	"RoastMe/internal/modules/roast/domain/entity"
)

// Prompts 发送给生成模型的两段指令
type Prompts struct {
	System string
	User   string
}

const systemPreamble = `You are a witty AI comedian specializing in roasts. Your job is to create personalized,
hilarious roasts based on the information provided about a person.`

var intensityInstructions = map[entity.Intensity]string{
	entity.IntensityLight: `Create a gentle, playful roast that's funny but not mean. Think friendly teasing between friends.
Keep it lighthearted and wholesome. Focus on quirky observations rather than harsh criticism.`,
	entity.IntensityMedium: `Create a standard roast with clever observations and witty burns. Be sarcastic and humorous
but maintain a playful tone. This should feel like a comedy roast - funny but not cruel.`,
	entity.IntensitySavage: `Create a savage roast that pulls no punches. Be brutally honest and hilariously harsh.
Use sharp wit and clever wordplay. Make it devastating but still entertaining and creative.
Don't cross into genuinely hurtful territory - keep it playfully savage.`,
}

const rules = `Rules:
- Generate exactly 6-10 lines of roast content
- Each line should be a separate witty observation or burn
- Use the person's actual details to make it personalized
- Be creative and original - avoid clichés
- Keep it entertaining and fun, never genuinely mean or offensive
- Separate each line with a newline character
- Don't include greetings or conclusions, just pure roast content`

// IntensityInstruction 返回强度对应的固定段落，非法强度按默认强度处理
func IntensityInstruction(i entity.Intensity) string {
	if s, ok := intensityInstructions[i]; ok {
		return s
	}
	return intensityInstructions[entity.DefaultIntensity]
}

// Compose 根据用户信息与强度拼出 system / user 指令，纯函数
func Compose(u entity.UserData) Prompts {
	intensity := u.RoastIntensity
	if !intensity.IsValid() {
		intensity = entity.DefaultIntensity
	}

	system := systemPreamble + "\n\n" + IntensityInstruction(intensity) + "\n\n" + rules
	user := fmt.Sprintf("Roast this person based on their information:\n%s\n\nRoast intensity level: %s",
		UserSummary(u), intensity)

	return Prompts{System: system, User: user}
}

// UserSummary "Name: x, Age: y" 后按固定顺序追加非空的可选字段
func UserSummary(u entity.UserData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s, Age: %s", u.Name, u.Age)

	optional := []struct {
		label string
		value string
	}{
		{"Occupation", u.Occupation},
		{"Appearance", u.Appearance},
		{"Hobbies", u.Hobbies},
		{"Personality", u.Personality},
		{"Embarrassing fact", u.EmbarrassingFact},
	}
	for _, f := range optional {
		if f.value == "" {
			continue
		}
		fmt.Fprintf(&b, ", %s: %s", f.label, f.value)
	}
	return b.String()
}
