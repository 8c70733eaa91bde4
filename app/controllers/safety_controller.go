package controllers

// SafetyController serves the curated awareness content.
type SafetyController struct {
	BaseController
}

// Effects handles GET /api/safety/effects.
func (c *SafetyController) Effects() {
	effects, err := getSafetyService().SafetyEffects(c.Ctx.Request.Context())
	if err != nil {
		c.JSONAppError(err)
		return
	}
	c.JSONSuccess(effects)
}

// MentalEffects handles GET /api/mental-effects.
func (c *SafetyController) MentalEffects() {
	effects, err := getSafetyService().MentalEffects(c.Ctx.Request.Context())
	if err != nil {
		c.JSONAppError(err)
		return
	}
	c.JSONSuccess(effects)
}

// Stories handles GET /api/safety/stories.
func (c *SafetyController) Stories() {
	stories, err := getSafetyService().RealStories(c.Ctx.Request.Context())
	if err != nil {
		c.JSONAppError(err)
		return
	}
	c.JSONSuccess(stories)
}
