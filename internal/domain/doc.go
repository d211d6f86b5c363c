// Package domain contains the core business entities of the trivia service:
// questions, categories and the validation rules that apply to them. It is
// independent of any specific infrastructure or delivery mechanism.
package domain
