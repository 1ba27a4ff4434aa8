package model

import "strings"

// 配送先
type DeliveryInfo struct {
	//宛名
	Name string `json:"name"`

	//電話番号
	Phone string `json:"phone"`

	//番地など
	Address string `json:"address"`

	//建物名など（任意）
	Apartment string `json:"apartment"`

	//配達メモ（任意）
	Instructions string `json:"instructions"`
}

// 住所と建物名を連結した配送先
func (d DeliveryInfo) FullAddress() string {
	addr := strings.TrimSpace(d.Address)
	if apt := strings.TrimSpace(d.Apartment); apt != "" {
		return addr + ", " + apt
	}
	return addr
}
