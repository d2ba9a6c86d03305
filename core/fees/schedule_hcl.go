package fees

import (
	"github.com/hashicorp/hcl/v2/hclsimple"

	"listing-price/internal/errors"
)

// HCL schedule layout:
//
//	platform "etsy" {
//	  flat {
//	    rate      = 0.095
//	    fixed_fee = 0.45
//	  }
//	}
//	platform "ebay" {
//	  category "Other" {
//	    tiered {
//	      tier {
//	        rate = 0.136
//	        cap  = 7500
//	      }
//	      tier { rate = 0.0235 }
//	    }
//	  }
//	}
type hclSchedule struct {
	Platforms []hclPlatform `hcl:"platform,block"`
}

type hclPlatform struct {
	ID          string          `hcl:"id,label"`
	Flat        *hclFlat        `hcl:"flat,block"`
	Tiered      *hclTiered      `hcl:"tiered,block"`
	Conditional *hclConditional `hcl:"conditional,block"`
	Categories  []hclCategory   `hcl:"category,block"`
}

type hclCategory struct {
	Name        string          `hcl:"name,label"`
	Flat        *hclFlat        `hcl:"flat,block"`
	Tiered      *hclTiered      `hcl:"tiered,block"`
	Conditional *hclConditional `hcl:"conditional,block"`
}

type hclModel struct {
	Flat        *hclFlat        `hcl:"flat,block"`
	Tiered      *hclTiered      `hcl:"tiered,block"`
	Conditional *hclConditional `hcl:"conditional,block"`
}

type hclFlat struct {
	Rate     float64  `hcl:"rate"`
	FixedFee *float64 `hcl:"fixed_fee,optional"`
}

type hclTiered struct {
	Tiers []hclTier `hcl:"tier,block"`
}

type hclTier struct {
	Rate float64  `hcl:"rate"`
	Cap  *float64 `hcl:"cap,optional"`
}

type hclConditional struct {
	AtLeast float64  `hcl:"at_least"`
	IfTrue  hclModel `hcl:"if_true,block"`
	IfFalse hclModel `hcl:"if_false,block"`
}

func (m hclModel) doc() ModelDoc {
	var d ModelDoc
	if m.Flat != nil {
		f := Flat{Rate: m.Flat.Rate}
		if m.Flat.FixedFee != nil {
			f.FixedFee = *m.Flat.FixedFee
		}
		d.Flat = &f
	}
	if m.Tiered != nil {
		d.Tiered = make([]Tier, 0, len(m.Tiered.Tiers))
		for _, t := range m.Tiered.Tiers {
			d.Tiered = append(d.Tiered, Tier{Rate: t.Rate, Cap: t.Cap})
		}
	}
	if m.Conditional != nil {
		d.Conditional = &ConditionalDoc{
			AtLeast: m.Conditional.AtLeast,
			IfTrue:  m.Conditional.IfTrue.doc(),
			IfFalse: m.Conditional.IfFalse.doc(),
		}
	}
	return d
}

func (s hclSchedule) document() ScheduleDocument {
	doc := ScheduleDocument{Platforms: make([]PlatformDoc, 0, len(s.Platforms))}
	for _, p := range s.Platforms {
		pd := PlatformDoc{
			ID:       p.ID,
			ModelDoc: hclModel{Flat: p.Flat, Tiered: p.Tiered, Conditional: p.Conditional}.doc(),
		}
		for _, c := range p.Categories {
			pd.Categories = append(pd.Categories, CategoryDoc{
				Name:     c.Name,
				ModelDoc: hclModel{Flat: c.Flat, Tiered: c.Tiered, Conditional: c.Conditional}.doc(),
			})
		}
		doc.Platforms = append(doc.Platforms, pd)
	}
	return doc
}

// ParseScheduleHCL decodes an HCL schedule. filename is used for
// diagnostics and must end in .hcl.
func ParseScheduleHCL(filename string, src []byte) (*Catalog, error) {
	var s hclSchedule
	if err := hclsimple.Decode(filename, src, nil, &s); err != nil {
		return nil, errors.Wrap(errors.TypeInvalidSchedule, "decoding HCL schedule", err)
	}
	return buildFromDocument(s.document())
}
