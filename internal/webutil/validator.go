package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ko" // 韓国語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"word":     "단어",
	"pinyin":   "병음",
	"meaning":  "의미",
	"examples": "예문",
	"chinese":  "중국어 예문",
	"korean":   "한국어 번역",
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	korean := ko.New()
	uni := ut.New(korean, korean)
	var found bool
	Trans, found = uni.GetTranslator("ko")
	if !found {
		log.Fatal("translator not found")
	}

	// validator には韓国語の翻訳が無いので、使うタグだけ登録する
	registerTranslation("required", "{0}은(는) 필수 항목입니다.")
	registerTranslation("min", "{0}은(는) {1}개 이상이어야 합니다.")
	registerTranslation("max", "{0}은(는) {1}자 이하로 입력해주세요.")
}

func registerTranslation(tag string, msg string) {
	err := Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
		return ut.Add(tag, msg, true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		fieldName, ok := fieldNameTranslations[fe.Field()]
		if !ok {
			fieldName = fe.Field()
		}
		t, _ := ut.T(tag, fieldName, fe.Param())
		return t
	})
	if err != nil {
		log.Fatal(err)
	}
}
