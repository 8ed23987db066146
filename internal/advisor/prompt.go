package advisor

import (
	"strings"
	"text/template"
)

// Situation is the game state a prompt describes.
type Situation struct {
	Trigger     string // What just happened, e.g. "level up"
	Score       int
	Level       int
	Lives       int
	Enemies     int // Enemies on screen
	RecentKills int // Kills since the previous observation
}

var promptTmpl = template.Must(template.New("prompt").Parse(
	`You are an ancient, wise, but slightly quirky observer watching a simple 2D space shooter.
The player is battling geometric shapes.
{{if .Trigger}}Moment: {{.Trigger}}.
{{end}}Current score: {{.Score}}
Level: {{.Level}}
Enemies on screen: {{.Enemies}}
Lives left: {{.Lives}}
Recent activity: the player destroyed {{.RecentKills}} enemies since the last observation.

Give a very short, mysterious or insightful comment (1-2 sentences maximum) about this moment.
It may be a tip, a philosophical remark about the shapes, or something cryptic.
Do NOT refer to yourself as an AI or name the model. Stay in character.
Example style: "The swarm recedes... but they learn." or "Focus is key when the patterns shift."`))

// BuildPrompt renders the observer prompt for a situation.
func BuildPrompt(s Situation) string {
	var sb strings.Builder
	if err := promptTmpl.Execute(&sb, s); err != nil {
		// The template only reads plain int and string fields.
		panic("advisor: prompt template: " + err.Error())
	}
	return sb.String()
}
