// Package validate 为 gin 的参数绑定注册中文校验消息
package validate

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
)

var (
	once  sync.Once
	trans ut.Translator
	setup error
)

// Setup 向 gin 默认校验器注册中文翻译，并以 json/form 标签名作为字段名
// 可重复调用，仅首次生效
func Setup() error {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			setup = errors.New("gin 校验引擎不是 validator/v10")
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})

		locale := zh.New()
		uni := ut.New(locale, locale)
		trans, _ = uni.GetTranslator("zh")
		setup = zh_translations.RegisterDefaultTranslations(v, trans)
	})
	return setup
}

// Message 把绑定错误转换为一条可展示的消息
// 校验错误取第一条翻译结果；JSON 语法/类型错误返回通用提示
func Message(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if trans != nil {
			return verrs[0].Translate(trans)
		}
		return verrs[0].Error()
	}
	return "请求参数格式错误"
}
