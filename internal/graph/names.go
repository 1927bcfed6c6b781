package graph

import (
	"strconv"

	"github.com/qhato/promoengine/internal/promotion"
)

func presenceName(layer LayerKey, item int) string {
	return "L" + strconv.Itoa(int(layer)) + "_i" + strconv.Itoa(item)
}

func covVarName(layer LayerKey, item int) string {
	return "cov_" + presenceName(layer, item)
}

func memberVarName(layer LayerKey, item int) string {
	return "member_" + presenceName(layer, item)
}

func bundleVarName(layer LayerKey, key promotion.Key, index int) string {
	return "bundle_L" + strconv.Itoa(int(layer)) + "_p" + strconv.Itoa(int(key)) + "_" + strconv.Itoa(index)
}

func appBudgetName(key promotion.Key) string {
	return "app_budget_p" + strconv.Itoa(int(key))
}

func monetaryBudgetName(key promotion.Key) string {
	return "monetary_budget_p" + strconv.Itoa(int(key))
}
