package domain

import "testing"

func validCampaign() Campaign {
	return Campaign{
		ImpressionsLimit:  100,
		ClicksLimit:       10,
		CostPerImpression: 0.5,
		CostPerClick:      1.5,
		AdTitle:           "title",
		AdText:            "text",
		StartDate:         1,
		EndDate:           5,
	}
}

func TestCampaignValidate(t *testing.T) {
	if err := validCampaign().Validate(0); err != nil {
		t.Fatalf("valid campaign rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Campaign)
		day    int
	}{
		{"empty title", func(c *Campaign) { c.AdTitle = "" }, 0},
		{"empty text", func(c *Campaign) { c.AdText = "" }, 0},
		{"negative limit", func(c *Campaign) { c.ImpressionsLimit = -1 }, 0},
		{"clicks limit above impressions limit", func(c *Campaign) { c.ClicksLimit = 200 }, 0},
		{"negative cost", func(c *Campaign) { c.CostPerClick = -0.1 }, 0},
		{"end before start", func(c *Campaign) { c.StartDate = 5; c.EndDate = 1 }, 0},
		{"window in the past", func(c *Campaign) {}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCampaign()
			tt.mutate(&c)
			if err := c.Validate(tt.day); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCampaignValidateTargeting(t *testing.T) {
	bad := Gender("OTHER")
	c := validCampaign()
	c.Targeting = &Targeting{Gender: &bad}
	if err := c.Validate(0); err == nil {
		t.Fatal("expected targeting gender error")
	}

	from, to := 40, 20
	c = validCampaign()
	c.Targeting = &Targeting{AgeFrom: &from, AgeTo: &to}
	if err := c.Validate(0); err == nil {
		t.Fatal("expected inverted age range error")
	}
}

func TestCampaignFrozenFields(t *testing.T) {
	c := validCampaign() // window [1, 5]

	if got := c.FrozenFields(0); got != nil {
		t.Fatalf("nothing is frozen before the window, got %v", got)
	}
	if got := c.FrozenFields(6); got != nil {
		t.Fatalf("nothing is frozen after the window, got %v", got)
	}

	frozen := c.FrozenFields(3)
	for _, f := range []CampaignField{FieldImpressionsLimit, FieldClicksLimit, FieldStartDate, FieldEndDate} {
		if _, ok := frozen[f]; !ok {
			t.Fatalf("%s must be frozen while active", f)
		}
	}
}

func TestClientValidate(t *testing.T) {
	valid := Client{Login: "u1", Age: 30, Location: "Moscow", Gender: GenderMale}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid client rejected: %v", err)
	}

	all := valid
	all.Gender = GenderAll
	if err := all.Validate(); err == nil {
		t.Fatal("ALL gender is reserved for targeting")
	}

	old := valid
	old.Age = 101
	if err := old.Validate(); err == nil {
		t.Fatal("expected age range error")
	}
}
