package models

import "testing"

func TestIsValidPropertyType(t *testing.T) {
	for _, valid := range []string{"apartment", "house", "studio", "office"} {
		if !IsValidPropertyType(valid) {
			t.Errorf("expected %q to be valid", valid)
		}
	}
	for _, invalid := range []string{"", "condo", "Apartment", "loft"} {
		if IsValidPropertyType(invalid) {
			t.Errorf("expected %q to be invalid", invalid)
		}
	}
}

func TestPropertyFilterIsEmpty(t *testing.T) {
	if !(PropertyFilter{}).IsEmpty() {
		t.Error("zero filter should be empty")
	}
	if (PropertyFilter{PropertyType: "house"}).IsEmpty() {
		t.Error("filter with property type should not be empty")
	}
	if (PropertyFilter{MaxPrice: 1000}).IsEmpty() {
		t.Error("filter with max price should not be empty")
	}
	if (PropertyFilter{RoomType: "2 bedrooms 1 bath"}).IsEmpty() {
		t.Error("filter with room type should not be empty")
	}
}
