package panels

import (
	"academy/backend/models"
	"academy/client/forms"
	"academy/client/pagination"
	"academy/schema"
	"context"
)

type SettingsPanel struct {
	mount
	Resource *Resource[models.WebsiteSetting, schema.SettingInput]
	Form     *forms.Form[schema.SettingInput]
	Pager    *pagination.Pager
}

// settingSubmitter creates full settings but only ever sends the value when
// editing, since key and type are fixed once created.
type settingSubmitter struct {
	res *Resource[models.WebsiteSetting, schema.SettingInput]
}

func (s settingSubmitter) Create(ctx context.Context, in schema.SettingInput) error {
	return s.res.Create(ctx, in)
}

func (s settingSubmitter) Update(ctx context.Context, key string, in schema.SettingInput) error {
	if _, err := s.res.deps.API.UpdateSetting(ctx, key, in.Value); err != nil {
		return err
	}
	s.res.Invalidate()
	return nil
}

func NewSettingsPanel(d Deps, pageSize int) *SettingsPanel {
	res := NewResource[models.WebsiteSetting, schema.SettingInput](d, "setting", ResourceSettings, "/api/website-settings")
	form := forms.New("setting", schema.NewSettingInput(), forms.Submitter[schema.SettingInput](settingSubmitter{res: res}), d.notifier(),
		forms.WithCheck(func(v schema.SettingInput) map[string]string {
			if v.Value == "" {
				return nil
			}
			if msg := schema.SettingValue(v.Type, v.Value); msg != "" {
				return map[string]string{"value": msg}
			}
			return nil
		}))
	return &SettingsPanel{Resource: res, Form: form, Pager: pagination.New(pageSize)}
}

func (p *SettingsPanel) Open() {
	if p.sub == nil {
		p.sub = p.Resource.Subscribe(p.changed)
	}
}

func (p *SettingsPanel) Table() Table[models.WebsiteSetting] {
	return tableFrom[models.WebsiteSetting](p.state(), p.Pager, "No settings configured.")
}

// Edit binds the form to the setting key; only its value can be changed.
func (p *SettingsPanel) Edit(s models.WebsiteSetting) {
	p.Form.OpenEdit(s.Key, schema.SettingInputFrom(s))
}
