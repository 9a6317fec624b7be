package models

// PredictionRecord is one row of the crop_predictions table. Records are
// created upstream by the prediction service; this API only reads them and
// patches the two feedback fields.
//
// created_at is kept as the raw stored string: upstream writes ISO
// timestamps with no guaranteed timezone annotation, and the cleaning
// pipeline is responsible for parsing and normalizing it.
type PredictionRecord struct {
	PredictionID     int64    `gorm:"column:Prediction_ID;primaryKey" json:"prediction_id"`
	Nitrogen         float64  `gorm:"column:N" json:"n"`
	Phosphorus       float64  `gorm:"column:P" json:"p"`
	Potassium        float64  `gorm:"column:K" json:"k"`
	Temperature      float64  `gorm:"column:Temperature" json:"temperature"`
	Humidity         float64  `gorm:"column:Humidity" json:"humidity"`
	PH               float64  `gorm:"column:pH" json:"ph"`
	Rainfall         float64  `gorm:"column:Rainfall" json:"rainfall"`
	Latitude         *float64 `gorm:"column:Latitude" json:"latitude"`
	Longitude        *float64 `gorm:"column:Longitude" json:"longitude"`
	Location         string   `gorm:"column:Location" json:"location"`
	Crop             string   `gorm:"column:Crop" json:"crop"`
	UserSelectedCrop *string  `gorm:"column:User_Selected_Crop" json:"user_selected_crop"`
	FeedbackMessage  *string  `gorm:"column:Feedback_Message" json:"feedback_message"`
	FeedbackReceived bool     `gorm:"column:Feedback_Received" json:"feedback_received"`
	CreatedAt        string   `gorm:"column:created_at" json:"created_at"`
}

func (PredictionRecord) TableName() string { return "crop_predictions" }
