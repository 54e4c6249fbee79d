package panels

import (
	"academy/backend/models"
	"academy/client/forms"
	"academy/client/pagination"
	"academy/schema"
	"context"
	"strconv"
)

type BannersPanel struct {
	mount
	Resource *Resource[models.Banner, schema.BannerInput]
	Form     *forms.Form[schema.BannerInput]
	Pager    *pagination.Pager
}

func NewBannersPanel(d Deps, pageSize int) *BannersPanel {
	res := NewResource[models.Banner, schema.BannerInput](d, "banner", ResourceBanners, "/api/banners")
	form := forms.New("banner", schema.NewBannerInput(), forms.Submitter[schema.BannerInput](res), d.notifier(),
		forms.WithPrepare(func(v *schema.BannerInput, _ bool) { v.Normalize() }))
	return &BannersPanel{Resource: res, Form: form, Pager: pagination.New(pageSize)}
}

func (p *BannersPanel) Open() {
	if p.sub == nil {
		p.sub = p.Resource.Subscribe(p.changed)
	}
}

func (p *BannersPanel) Table() Table[models.Banner] {
	return tableFrom[models.Banner](p.state(), p.Pager, "No banners yet. Create one to fill the home page carousel.")
}

func (p *BannersPanel) Edit(b models.Banner) {
	p.Form.OpenEdit(bannerID(b), schema.BannerInputFrom(b))
}

func (p *BannersPanel) Delete(ctx context.Context, b models.Banner) (bool, error) {
	return p.Resource.Delete(ctx, bannerID(b), b.Title)
}

func bannerID(b models.Banner) string {
	return strconv.FormatUint(uint64(b.ID), 10)
}
