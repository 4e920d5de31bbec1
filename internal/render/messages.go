package render

import (
	"fmt"

	"golang.org/x/text/language"
)

type messages struct {
	ageFormat  string
	noUpcoming string
	pending    string
	noItems    string
}

func (m messages) age(months int) string { return fmt.Sprintf(m.ageFormat, months) }

var (
	japanese = messages{
		ageFormat:  "%2dヶ月",
		noUpcoming: "今後のマイルストーンはありません",
		pending:    "サイズとアイテムは未取得です",
		noItems:    "アイテムはありません",
	}
	english = messages{
		ageFormat:  "%2d mo",
		noUpcoming: "No upcoming milestones",
		pending:    "Size and items not loaded yet",
		noItems:    "No items",
	}
)

func messagesFor(locale language.Tag) messages {
	if base, _ := locale.Base(); base.String() == "en" {
		return english
	}
	return japanese
}
