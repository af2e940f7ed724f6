package entity

// Renderer handles rendering the craft and obstacles
type Renderer interface {
	RenderCraft(craft *Craft)
	RenderWell(well *GravityWell)
	RenderBarrier(barrier *Barrier)
	Clear()
	Present()
}
