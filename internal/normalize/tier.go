package normalize

import (
	"strings"
	"unicode"

	"github.com/emiranda028/hoteles-sub000/internal/model"
)

type tierRule struct {
	tier   model.Tier
	tokens []string
}

// 按顺序匹配，第一个命中的规则生效
var tierRules = []tierRule{
	{model.TierAmbassador, []string{"AMBASSADOR", "AMB", "EMBAJADOR"}},
	{model.TierTitanium, []string{"TITANIUM", "TTM", "TIT", "TITANIO"}},
	{model.TierPlatinum, []string{"PLATINUM", "PLT", "PLA", "PLATINO"}},
	{model.TierGold, []string{"GOLD", "GLD", "ORO"}},
	{model.TierSilver, []string{"SILVER", "SLR", "SLV", "PLATA"}},
	{model.TierMember, []string{"MEMBER", "MRD", "MBR", "MIEMBRO"}},
}

// Tier 将会员等级原文（"(GLD) Gold"、"Platinum Elite"）归入六个已知等级之一，否则为 Other
func Tier(raw string) model.Tier {
	tokens := strings.FieldsFunc(Fold(raw), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, rule := range tierRules {
		for _, tok := range tokens {
			for _, want := range rule.tokens {
				if tok == want {
					return rule.tier
				}
			}
		}
	}
	return model.TierOther
}
