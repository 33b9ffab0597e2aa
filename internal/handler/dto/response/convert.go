package response

import (
	"time"

	"github.com/jinzhu/copier"
)

// copyOption renders view timestamps as unix seconds.
var copyOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: int64(0),
			Fn: func(src any) (any, error) {
				return src.(time.Time).Unix(), nil
			},
		},
		{
			SrcType: &time.Time{},
			DstType: (*int64)(nil),
			Fn: func(src any) (any, error) {
				t := src.(*time.Time)
				if t == nil {
					return (*int64)(nil), nil
				}
				u := t.Unix()
				return &u, nil
			},
		},
	},
}

func copyView[T any](v any) *T {
	res := new(T)
	_ = copier.CopyWithOption(res, v, copyOption)
	return res
}
