package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "unknown error"

	ProvinceNotFoundCode            = 2001
	ProvinceNotFoundMessage         = "province not found"
	ProvinceNameTakenCode           = 2002
	ProvinceNameTakenMessage        = "province name already taken"
	CityNotFoundCode                = 2003
	CityNotFoundMessage             = "city not found"
	CityNameTakenCode               = 2004
	CityNameTakenMessage            = "city name already taken in this province"
	ProvinceReferenceInvalidCode    = 2005
	ProvinceReferenceInvalidMessage = "referenced province does not exist"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error_message"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors"`
}

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

func getErrorStruct(code ErrorCode) *ErrorStruct {
	errorStruct := &ErrorStruct{
		ErrorCode:    UnknownErrorCode,
		ErrorMessage: UnknownErrorMessage,
	}

	switch code {
	case ProvinceNotFoundCode:
		errorStruct.ErrorCode = ProvinceNotFoundCode
		errorStruct.ErrorMessage = ProvinceNotFoundMessage
	case ProvinceNameTakenCode:
		errorStruct.ErrorCode = ProvinceNameTakenCode
		errorStruct.ErrorMessage = ProvinceNameTakenMessage
	case CityNotFoundCode:
		errorStruct.ErrorCode = CityNotFoundCode
		errorStruct.ErrorMessage = CityNotFoundMessage
	case CityNameTakenCode:
		errorStruct.ErrorCode = CityNameTakenCode
		errorStruct.ErrorMessage = CityNameTakenMessage
	case ProvinceReferenceInvalidCode:
		errorStruct.ErrorCode = ProvinceReferenceInvalidCode
		errorStruct.ErrorMessage = ProvinceReferenceInvalidMessage
	}

	return errorStruct
}
