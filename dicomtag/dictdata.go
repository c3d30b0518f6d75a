package dicomtag

// tagDictData is the compiled-in data dictionary (PS3.6 chapters 6-8 plus the
// PS3.7 command group), one tab-separated row per tag: tag, VR, VM, name,
// retired ("RET" or empty), keyword. Lines starting with '#' are comments.
//
// The PS3.6 rows are derived from the Innolitics JSON rendition of the
// standard, Copyright (c) 2017 Innolitics, LLC, MIT licensed.
const tagDictData = `# tag	VR	VM	name	retired	keyword
(0000,0000)	UL	1	Command Group Length		CommandGroupLength
(0000,0002)	UI	1	Affected SOP Class UID		AffectedSOPClassUID
(0000,0003)	UI	1	Requested SOP Class UID		RequestedSOPClassUID
(0000,0100)	US	1	Command Field		CommandField
(0000,0110)	US	1	Message ID		MessageID
(0000,0120)	US	1	Message ID Being Responded To		MessageIDBeingRespondedTo
(0000,0600)	AE	1	Move Destination		MoveDestination
(0000,0700)	US	1	Priority		Priority
(0000,0800)	US	1	Command Data Set Type		CommandDataSetType
(0000,0900)	US	1	Status		Status
(0000,0901)	AT	1-n	Offending Element		OffendingElement
(0000,0902)	LO	1	Error Comment		ErrorComment
(0000,0903)	US	1	Error ID		ErrorID
(0000,1000)	UI	1	Affected SOP Instance UID		AffectedSOPInstanceUID
(0000,1001)	UI	1	Requested SOP Instance UID		RequestedSOPInstanceUID
(0000,1002)	US	1	Event Type ID		EventTypeID
(0000,1005)	AT	1-n	Attribute Identifier List		AttributeIdentifierList
(0000,1008)	US	1	Action Type ID		ActionTypeID
(0000,1020)	US	1	Number of Remaining Sub-operations		NumberOfRemainingSuboperations
(0000,1021)	US	1	Number of Completed Sub-operations		NumberOfCompletedSuboperations
(0000,1022)	US	1	Number of Failed Sub-operations		NumberOfFailedSuboperations
(0000,1023)	US	1	Number of Warning Sub-operations		NumberOfWarningSuboperations
(0000,1030)	AE	1	Move Originator Application Entity Title		MoveOriginatorApplicationEntityTitle
(0000,1031)	US	1	Move Originator Message ID		MoveOriginatorMessageID
(0002,0000)	UL	1	File Meta Information Group Length		FileMetaInformationGroupLength
(0002,0001)	OB	1	File Meta Information Version		FileMetaInformationVersion
(0002,0002)	UI	1	Media Storage SOP Class UID		MediaStorageSOPClassUID
(0002,0003)	UI	1	Media Storage SOP Instance UID		MediaStorageSOPInstanceUID
(0002,0010)	UI	1	Transfer Syntax UID		TransferSyntaxUID
(0002,0012)	UI	1	Implementation Class UID		ImplementationClassUID
(0002,0013)	SH	1	Implementation Version Name		ImplementationVersionName
(0002,0016)	AE	1	Source Application Entity Title		SourceApplicationEntityTitle
(0002,0017)	AE	1	Sending Application Entity Title		SendingApplicationEntityTitle
(0002,0018)	AE	1	Receiving Application Entity Title		ReceivingApplicationEntityTitle
(0002,0026)	UR	1	Source Presentation Address		SourcePresentationAddress
(0002,0027)	UR	1	Sending Presentation Address		SendingPresentationAddress
(0002,0028)	UR	1	Receiving Presentation Address		ReceivingPresentationAddress
(0002,0031)	OB	1	RTV Meta Information Version		RTVMetaInformationVersion
(0002,0032)	UI	1	RTV Communication SOP Class UID		RTVCommunicationSOPClassUID
(0002,0033)	UI	1	RTV Communication SOP Instance UID		RTVCommunicationSOPInstanceUID
(0002,0035)	OB	1	RTV Source Identifier		RTVSourceIdentifier
(0002,0036)	OB	1	RTV Flow Identifier		RTVFlowIdentifier
(0002,0037)	UL	1	RTV Flow RTP Sampling Rate		RTVFlowRTPSamplingRate
(0002,0038)	FD	1	RTV Flow Actual Frame Duration		RTVFlowActualFrameDuration
(0002,0100)	UI	1	Private Information Creator UID		PrivateInformationCreatorUID
(0002,0102)	OB	1	Private Information		PrivateInformation
(0004,1130)	CS	1	File-set ID		FileSetID
(0004,1141)	CS	1-8	File-set Descriptor File ID		FileSetDescriptorFileID
(0004,1142)	CS	1	Specific Character Set of File-set Descriptor File		SpecificCharacterSetOfFileSetDescriptorFile
(0004,1200)	UL	1	Offset of the First Directory Record of the Root Directory Entity		OffsetOfTheFirstDirectoryRecordOfTheRootDirectoryEntity
(0004,1202)	UL	1	Offset of the Last Directory Record of the Root Directory Entity		OffsetOfTheLastDirectoryRecordOfTheRootDirectoryEntity
(0004,1212)	US	1	File-set Consistency Flag		FileSetConsistencyFlag
(0004,1220)	SQ	1	Directory Record Sequence		DirectoryRecordSequence
(0004,1400)	UL	1	Offset of the Next Directory Record		OffsetOfTheNextDirectoryRecord
(0004,1410)	US	1	Record In-use Flag		RecordInUseFlag
(0004,1420)	UL	1	Offset of Referenced Lower-Level Directory Entity		OffsetOfReferencedLowerLevelDirectoryEntity
(0004,1430)	CS	1	Directory Record Type		DirectoryRecordType
(0004,1432)	UI	1	Private Record UID		PrivateRecordUID
(0004,1500)	CS	1-8	Referenced File ID		ReferencedFileID
(0004,1504)	UL	1	MRDR Directory Record Offset	RET	MRDRDirectoryRecordOffset
(0004,1510)	UI	1	Referenced SOP Class UID in File		ReferencedSOPClassUIDInFile
(0004,1511)	UI	1	Referenced SOP Instance UID in File		ReferencedSOPInstanceUIDInFile
(0004,1512)	UI	1	Referenced Transfer Syntax UID in File		ReferencedTransferSyntaxUIDInFile
(0004,151A)	UI	1-n	Referenced Related General SOP Class UID in File		ReferencedRelatedGeneralSOPClassUIDInFile
(0004,1600)	UL	1	Number of References	RET	NumberOfReferences
(0006,0001)	SQ	1	Current Frame Functional Groups Sequence		CurrentFrameFunctionalGroupsSequence
(0008,0001)	UL	1	Length to End	RET	LengthToEnd
(0008,0005)	CS	1-n	Specific Character Set		SpecificCharacterSet
(0008,0006)	SQ	1	Language Code Sequence		LanguageCodeSequence
(0008,0008)	CS	2-n	Image Type		ImageType
(0008,0010)	SH	1	Recognition Code	RET	RecognitionCode
(0008,0012)	DA	1	Instance Creation Date		InstanceCreationDate
(0008,0013)	TM	1	Instance Creation Time		InstanceCreationTime
(0008,0014)	UI	1	Instance Creator UID		InstanceCreatorUID
(0008,0015)	DT	1	Instance Coercion DateTime		InstanceCoercionDateTime
(0008,0016)	UI	1	SOP Class UID		SOPClassUID
(0008,0017)	UI	1	Acquisition UID		AcquisitionUID
(0008,0018)	UI	1	SOP Instance UID		SOPInstanceUID
(0008,0019)	UI	1	Pyramid UID		PyramidUID
(0008,001A)	UI	1-n	Related General SOP Class UID		RelatedGeneralSOPClassUID
(0008,001B)	UI	1	Original Specialized SOP Class UID		OriginalSpecializedSOPClassUID
(0008,001C)	CS	1	Synthetic Data		SyntheticData
(0008,0020)	DA	1	Study Date		StudyDate
(0008,0021)	DA	1	Series Date		SeriesDate
(0008,0022)	DA	1	Acquisition Date		AcquisitionDate
(0008,0023)	DA	1	Content Date		ContentDate
(0008,0024)	DA	1	Overlay Date	RET	OverlayDate
(0008,0025)	DA	1	Curve Date	RET	CurveDate
(0008,002A)	DT	1	Acquisition DateTime		AcquisitionDateTime
(0008,0030)	TM	1	Study Time		StudyTime
(0008,0031)	TM	1	Series Time		SeriesTime
(0008,0032)	TM	1	Acquisition Time		AcquisitionTime
(0008,0033)	TM	1	Content Time		ContentTime
(0008,0034)	TM	1	Overlay Time	RET	OverlayTime
(0008,0035)	TM	1	Curve Time	RET	CurveTime
(0008,0040)	US	1	Data Set Type	RET	DataSetType
(0008,0041)	LO	1	Data Set Subtype	RET	DataSetSubtype
(0008,0042)	CS	1	Nuclear Medicine Series Type	RET	NuclearMedicineSeriesType
(0008,0050)	SH	1	Accession Number		AccessionNumber
(0008,0051)	SQ	1	Issuer of Accession Number Sequence		IssuerOfAccessionNumberSequence
(0008,0052)	CS	1	Query/Retrieve Level		QueryRetrieveLevel
(0008,0053)	CS	1	Query/Retrieve View		QueryRetrieveView
(0008,0054)	AE	1-n	Retrieve AE Title		RetrieveAETitle
(0008,0055)	AE	1	Station AE Title		StationAETitle
(0008,0056)	CS	1	Instance Availability		InstanceAvailability
(0008,0058)	UI	1-n	Failed SOP Instance UID List		FailedSOPInstanceUIDList
(0008,0060)	CS	1	Modality		Modality
(0008,0061)	CS	1-n	Modalities in Study		ModalitiesInStudy
(0008,0062)	UI	1-n	SOP Classes in Study		SOPClassesInStudy
(0008,0063)	SQ	1	Anatomic Regions in Study Code Sequence		AnatomicRegionsInStudyCodeSequence
(0008,0064)	CS	1	Conversion Type		ConversionType
(0008,0068)	CS	1	Presentation Intent Type		PresentationIntentType
(0008,0070)	LO	1	Manufacturer		Manufacturer
(0008,0080)	LO	1	Institution Name		InstitutionName
(0008,0081)	ST	1	Institution Address		InstitutionAddress
(0008,0082)	SQ	1	Institution Code Sequence		InstitutionCodeSequence
(0008,0090)	PN	1	Referring Physician's Name		ReferringPhysicianName
(0008,0092)	ST	1	Referring Physician's Address		ReferringPhysicianAddress
(0008,0094)	SH	1-n	Referring Physician's Telephone Numbers		ReferringPhysicianTelephoneNumbers
(0008,0096)	SQ	1	Referring Physician Identification Sequence		ReferringPhysicianIdentificationSequence
(0008,009C)	PN	1-n	Consulting Physician's Name		ConsultingPhysicianName
(0008,009D)	SQ	1	Consulting Physician Identification Sequence		ConsultingPhysicianIdentificationSequence
(0008,0100)	SH	1	Code Value		CodeValue
(0008,0101)	LO	1	Extended Code Value		ExtendedCodeValue
(0008,0102)	SH	1	Coding Scheme Designator		CodingSchemeDesignator
(0008,0103)	SH	1	Coding Scheme Version		CodingSchemeVersion
(0008,0104)	LO	1	Code Meaning		CodeMeaning
(0008,0105)	CS	1	Mapping Resource		MappingResource
(0008,0106)	DT	1	Context Group Version		ContextGroupVersion
(0008,0107)	DT	1	Context Group Local Version		ContextGroupLocalVersion
(0008,0108)	LT	1	Extended Code Meaning		ExtendedCodeMeaning
(0008,0109)	SQ	1	Coding Scheme Resources Sequence		CodingSchemeResourcesSequence
(0008,010A)	CS	1	Coding Scheme URL Type		CodingSchemeURLType
(0008,010B)	CS	1	Context Group Extension Flag		ContextGroupExtensionFlag
(0008,010C)	UI	1	Coding Scheme UID		CodingSchemeUID
(0008,010D)	UI	1	Context Group Extension Creator UID		ContextGroupExtensionCreatorUID
(0008,010E)	UR	1	Coding Scheme URL		CodingSchemeURL
(0008,010F)	CS	1	Context Identifier		ContextIdentifier
(0008,0110)	SQ	1	Coding Scheme Identification Sequence		CodingSchemeIdentificationSequence
(0008,0112)	LO	1	Coding Scheme Registry		CodingSchemeRegistry
(0008,0114)	ST	1	Coding Scheme External ID		CodingSchemeExternalID
(0008,0115)	ST	1	Coding Scheme Name		CodingSchemeName
(0008,0116)	ST	1	Coding Scheme Responsible Organization		CodingSchemeResponsibleOrganization
(0008,0117)	UI	1	Context UID		ContextUID
(0008,0118)	UI	1	Mapping Resource UID		MappingResourceUID
(0008,0119)	UC	1	Long Code Value		LongCodeValue
(0008,0120)	UR	1	URN Code Value		URNCodeValue
(0008,0121)	SQ	1	Equivalent Code Sequence		EquivalentCodeSequence
(0008,0122)	LO	1	Mapping Resource Name		MappingResourceName
(0008,0123)	SQ	1	Context Group Identification Sequence		ContextGroupIdentificationSequence
(0008,0124)	SQ	1	Mapping Resource Identification Sequence		MappingResourceIdentificationSequence
(0008,0201)	SH	1	Timezone Offset From UTC		TimezoneOffsetFromUTC
(0008,0220)	SQ	1	Responsible Group Code Sequence		ResponsibleGroupCodeSequence
(0008,0221)	CS	1	Equipment Modality		EquipmentModality
(0008,0222)	LO	1	Manufacturer's Related Model Group		ManufacturerRelatedModelGroup
(0008,0300)	SQ	1	Private Data Element Characteristics Sequence		PrivateDataElementCharacteristicsSequence
(0008,0301)	US	1	Private Group Reference		PrivateGroupReference
(0008,0302)	LO	1	Private Creator Reference		PrivateCreatorReference
(0008,0303)	CS	1	Block Identifying Information Status		BlockIdentifyingInformationStatus
(0008,0304)	US	1-n	Nonidentifying Private Elements		NonidentifyingPrivateElements
(0008,0305)	SQ	1	Deidentification Action Sequence		DeidentificationActionSequence
(0008,0306)	US	1-n	Identifying Private Elements		IdentifyingPrivateElements
(0008,0307)	CS	1	Deidentification Action		DeidentificationAction
(0008,0308)	US	1	Private Data Element		PrivateDataElement
(0008,0309)	UL	1-3	Private Data Element Value Multiplicity		PrivateDataElementValueMultiplicity
(0008,030A)	CS	1	Private Data Element Value Representation		PrivateDataElementValueRepresentation
(0008,030B)	UL	1-2	Private Data Element Number of Items		PrivateDataElementNumberOfItems
(0008,030C)	UC	1	Private Data Element Name		PrivateDataElementName
(0008,030D)	UC	1	Private Data Element Keyword		PrivateDataElementKeyword
(0008,030E)	UT	1	Private Data Element Description		PrivateDataElementDescription
(0008,030F)	UT	1	Private Data Element Encoding		PrivateDataElementEncoding
(0008,0310)	SQ	1	Private Data Element Definition Sequence		PrivateDataElementDefinitionSequence
(0008,0400)	SQ	1	Scope of Inventory Sequence		ScopeOfInventorySequence
(0008,0401)	LT	1	Inventory Purpose		InventoryPurpose
(0008,0402)	LT	1	Inventory Instance Description		InventoryInstanceDescription
(0008,0403)	CS	1	Inventory Level		InventoryLevel
(0008,0404)	DT	1	Item Inventory DateTime		ItemInventoryDateTime
(0008,0405)	CS	1	Removed from Operational Use		RemovedFromOperationalUse
(0008,0406)	SQ	1	Reason for Removal Code Sequence		ReasonForRemovalCodeSequence
(0008,0407)	UR	1	Stored Instance Base URI		StoredInstanceBaseURI
(0008,0408)	UR	1	Folder Access URI		FolderAccessURI
(0008,0409)	UR	1	File Access URI		FileAccessURI
(0008,040A)	CS	1	Container File Type		ContainerFileType
(0008,040B)	UR	1	Filename in Container		FilenameInContainer
(0008,040C)	UV	1	File Offset in Container		FileOffsetInContainer
(0008,040D)	UV	1	File Length in Container		FileLengthInContainer
(0008,040E)	UI	1	Stored Instance Transfer Syntax UID		StoredInstanceTransferSyntaxUID
(0008,040F)	CS	1-n	Extended Matching Mechanisms		ExtendedMatchingMechanisms
(0008,0410)	SQ	1	Range Matching Sequence		RangeMatchingSequence
(0008,0411)	SQ	1	List of UID Matching Sequence		ListOfUIDMatchingSequence
(0008,0412)	SQ	1	Empty Value Matching Sequence		EmptyValueMatchingSequence
(0008,0413)	SQ	1	General Matching Sequence		GeneralMatchingSequence
(0008,0414)	US	1	Requested Status Interval		RequestedStatusInterval
(0008,0415)	CS	1	Retain Instances		RetainInstances
(0008,0416)	DT	1	Expiration DateTime		ExpirationDateTime
(0008,0417)	CS	1	Transaction Status		TransactionStatus
(0008,0418)	LT	1	Transaction Status Comment		TransactionStatusComment
(0008,0419)	SQ	1	File Set Access Sequence		FileSetAccessSequence
(0008,041A)	SQ	1	File Access Sequence		FileAccessSequence
(0008,041B)	OB	1	Record Key		RecordKey
(0008,041C)	OB	1	Prior Record Key		PriorRecordKey
(0008,041D)	SQ	1	Metadata Sequence		MetadataSequence
(0008,041E)	SQ	1	Updated Metadata Sequence		UpdatedMetadataSequence
(0008,041F)	DT	1	Study Update DateTime		StudyUpdateDateTime
(0008,0420)	SQ	1	Inventory Access End Points Sequence		InventoryAccessEndPointsSequence
(0008,0421)	SQ	1	Study Access End Points Sequence		StudyAccessEndPointsSequence
(0008,0422)	SQ	1	Incorporated Inventory Instance Sequence		IncorporatedInventoryInstanceSequence
(0008,0423)	SQ	1	Inventoried Studies Sequence		InventoriedStudiesSequence
(0008,0424)	SQ	1	Inventoried Series Sequence		InventoriedSeriesSequence
(0008,0425)	SQ	1	Inventoried Instances Sequence		InventoriedInstancesSequence
(0008,0426)	CS	1	Inventory Completion Status		InventoryCompletionStatus
(0008,0427)	UL	1	Number of Study Records in Instance		NumberOfStudyRecordsInInstance
(0008,0428)	UV	1	Total Number of Study Records		TotalNumberOfStudyRecords
(0008,0429)	UV	1	Maximum Number of Records		MaximumNumberOfRecords
(0008,1000)	AE	1	Network ID	RET	NetworkID
(0008,1010)	SH	1	Station Name		StationName
(0008,1030)	LO	1	Study Description		StudyDescription
(0008,1032)	SQ	1	Procedure Code Sequence		ProcedureCodeSequence
(0008,103E)	LO	1	Series Description		SeriesDescription
(0008,103F)	SQ	1	Series Description Code Sequence		SeriesDescriptionCodeSequence
(0008,1040)	LO	1	Institutional Department Name		InstitutionalDepartmentName
(0008,1041)	SQ	1	Institutional Department Type Code Sequence		InstitutionalDepartmentTypeCodeSequence
(0008,1048)	PN	1-n	Physician(s) of Record		PhysiciansOfRecord
(0008,1049)	SQ	1	Physician(s) of Record Identification Sequence		PhysiciansOfRecordIdentificationSequence
(0008,1050)	PN	1-n	Performing Physician's Name		PerformingPhysicianName
(0008,1052)	SQ	1	Performing Physician Identification Sequence		PerformingPhysicianIdentificationSequence
(0008,1060)	PN	1-n	Name of Physician(s) Reading Study		NameOfPhysiciansReadingStudy
(0008,1062)	SQ	1	Physician(s) Reading Study Identification Sequence		PhysiciansReadingStudyIdentificationSequence
(0008,1070)	PN	1-n	Operators' Name		OperatorsName
(0008,1072)	SQ	1	Operator Identification Sequence		OperatorIdentificationSequence
(0008,1080)	LO	1-n	Admitting Diagnoses Description		AdmittingDiagnosesDescription
(0008,1084)	SQ	1	Admitting Diagnoses Code Sequence		AdmittingDiagnosesCodeSequence
(0008,1088)	LO	1	Pyramid Description		PyramidDescription
(0008,1090)	LO	1	Manufacturer's Model Name		ManufacturerModelName
(0008,1100)	SQ	1	Referenced Results Sequence	RET	ReferencedResultsSequence
(0008,1110)	SQ	1	Referenced Study Sequence		ReferencedStudySequence
(0008,1111)	SQ	1	Referenced Performed Procedure Step Sequence		ReferencedPerformedProcedureStepSequence
(0008,1112)	SQ	1	Referenced Instances by SOP Class Sequence		ReferencedInstancesBySOPClassSequence
(0008,1115)	SQ	1	Referenced Series Sequence		ReferencedSeriesSequence
(0008,1120)	SQ	1	Referenced Patient Sequence		ReferencedPatientSequence
(0008,1125)	SQ	1	Referenced Visit Sequence		ReferencedVisitSequence
(0008,1130)	SQ	1	Referenced Overlay Sequence	RET	ReferencedOverlaySequence
(0008,1134)	SQ	1	Referenced Stereometric Instance Sequence		ReferencedStereometricInstanceSequence
(0008,113A)	SQ	1	Referenced Waveform Sequence		ReferencedWaveformSequence
(0008,1140)	SQ	1	Referenced Image Sequence		ReferencedImageSequence
(0008,1145)	SQ	1	Referenced Curve Sequence	RET	ReferencedCurveSequence
(0008,114A)	SQ	1	Referenced Instance Sequence		ReferencedInstanceSequence
(0008,114B)	SQ	1	Referenced Real World Value Mapping Instance Sequence		ReferencedRealWorldValueMappingInstanceSequence
(0008,1150)	UI	1	Referenced SOP Class UID		ReferencedSOPClassUID
(0008,1155)	UI	1	Referenced SOP Instance UID		ReferencedSOPInstanceUID
(0008,1156)	SQ	1	Definition Source Sequence		DefinitionSourceSequence
(0008,115A)	UI	1-n	SOP Classes Supported		SOPClassesSupported
(0008,1160)	IS	1-n	Referenced Frame Number		ReferencedFrameNumber
(0008,1161)	UL	1-n	Simple Frame List		SimpleFrameList
(0008,1162)	UL	3-3n	Calculated Frame List		CalculatedFrameList
(0008,1163)	FD	2	Time Range		TimeRange
(0008,1164)	SQ	1	Frame Extraction Sequence		FrameExtractionSequence
(0008,1167)	UI	1	Multi-frame Source SOP Instance UID		MultiFrameSourceSOPInstanceUID
(0008,1190)	UR	1	Retrieve URL		RetrieveURL
(0008,1195)	UI	1	Transaction UID		TransactionUID
(0008,1196)	US	1	Warning Reason		WarningReason
(0008,1197)	US	1	Failure Reason		FailureReason
(0008,1198)	SQ	1	Failed SOP Sequence		FailedSOPSequence
(0008,1199)	SQ	1	Referenced SOP Sequence		ReferencedSOPSequence
(0008,119A)	SQ	1	Other Failures Sequence		OtherFailuresSequence
(0008,119B)	SQ	1	Failed Study Sequence		FailedStudySequence
(0008,1200)	SQ	1	Studies Containing Other Referenced Instances Sequence		StudiesContainingOtherReferencedInstancesSequence
(0008,1250)	SQ	1	Related Series Sequence		RelatedSeriesSequence
(0008,2110)	CS	1	Lossy Image Compression (Retired)	RET	LossyImageCompressionRetired
(0008,2111)	ST	1	Derivation Description		DerivationDescription
(0008,2112)	SQ	1	Source Image Sequence		SourceImageSequence
(0008,2120)	SH	1	Stage Name		StageName
(0008,2122)	IS	1	Stage Number		StageNumber
(0008,2124)	IS	1	Number of Stages		NumberOfStages
(0008,2127)	SH	1	View Name		ViewName
(0008,2128)	IS	1	View Number		ViewNumber
(0008,2129)	IS	1	Number of Event Timers		NumberOfEventTimers
(0008,212A)	IS	1	Number of Views in Stage		NumberOfViewsInStage
(0008,2130)	DS	1-n	Event Elapsed Time(s)		EventElapsedTimes
(0008,2132)	LO	1-n	Event Timer Name(s)		EventTimerNames
(0008,2133)	SQ	1	Event Timer Sequence		EventTimerSequence
(0008,2134)	FD	1	Event Time Offset		EventTimeOffset
(0008,2135)	SQ	1	Event Code Sequence		EventCodeSequence
(0008,2142)	IS	1	Start Trim		StartTrim
(0008,2143)	IS	1	Stop Trim		StopTrim
(0008,2144)	IS	1	Recommended Display Frame Rate		RecommendedDisplayFrameRate
(0008,2200)	CS	1	Transducer Position	RET	TransducerPosition
(0008,2204)	CS	1	Transducer Orientation	RET	TransducerOrientation
(0008,2208)	CS	1	Anatomic Structure	RET	AnatomicStructure
(0008,2218)	SQ	1	Anatomic Region Sequence		AnatomicRegionSequence
(0008,2220)	SQ	1	Anatomic Region Modifier Sequence		AnatomicRegionModifierSequence
(0008,2228)	SQ	1	Primary Anatomic Structure Sequence		PrimaryAnatomicStructureSequence
(0008,2229)	SQ	1	Anatomic Structure, Space or Region Sequence	RET	AnatomicStructureSpaceOrRegionSequence
(0008,2230)	SQ	1	Primary Anatomic Structure Modifier Sequence		PrimaryAnatomicStructureModifierSequence
(0008,2240)	SQ	1	Transducer Position Sequence	RET	TransducerPositionSequence
(0008,2242)	SQ	1	Transducer Position Modifier Sequence	RET	TransducerPositionModifierSequence
(0008,2244)	SQ	1	Transducer Orientation Sequence	RET	TransducerOrientationSequence
(0008,2246)	SQ	1	Transducer Orientation Modifier Sequence	RET	TransducerOrientationModifierSequence
(0008,2251)	SQ	1	Anatomic Structure Space Or Region Code Sequence (Trial)	RET	AnatomicStructureSpaceOrRegionCodeSequenceTrial
(0008,2253)	SQ	1	Anatomic Portal Of Entrance Code Sequence (Trial)	RET	AnatomicPortalOfEntranceCodeSequenceTrial
(0008,2255)	SQ	1	Anatomic Approach Direction Code Sequence (Trial)	RET	AnatomicApproachDirectionCodeSequenceTrial
(0008,2256)	ST	1	Anatomic Perspective Description (Trial)	RET	AnatomicPerspectiveDescriptionTrial
(0008,2257)	SQ	1	Anatomic Perspective Code Sequence (Trial)	RET	AnatomicPerspectiveCodeSequenceTrial
(0008,2258)	ST	1	Anatomic Location Of Examining Instrument Description (Trial)	RET	AnatomicLocationOfExaminingInstrumentDescriptionTrial
(0008,2259)	SQ	1	Anatomic Location Of Examining Instrument Code Sequence (Trial)	RET	AnatomicLocationOfExaminingInstrumentCodeSequenceTrial
(0008,225A)	SQ	1	Anatomic Structure Space Or Region Modifier Code Sequence (Trial)	RET	AnatomicStructureSpaceOrRegionModifierCodeSequenceTrial
(0008,225C)	SQ	1	On Axis Background Anatomic Structure Code Sequence (Trial)	RET	OnAxisBackgroundAnatomicStructureCodeSequenceTrial
(0008,3001)	SQ	1	Alternate Representation Sequence		AlternateRepresentationSequence
(0008,3002)	UI	1-n	Available Transfer Syntax UID		AvailableTransferSyntaxUID
(0008,3010)	UI	1-n	Irradiation Event UID		IrradiationEventUID
(0008,3011)	SQ	1	Source Irradiation Event Sequence		SourceIrradiationEventSequence
(0008,3012)	UI	1	Radiopharmaceutical Administration Event UID		RadiopharmaceuticalAdministrationEventUID
(0008,4000)	LT	1	Identifying Comments	RET	IdentifyingComments
(0008,9007)	CS	4-5	Frame Type		FrameType
(0008,9092)	SQ	1	Referenced Image Evidence Sequence		ReferencedImageEvidenceSequence
(0008,9121)	SQ	1	Referenced Raw Data Sequence		ReferencedRawDataSequence
(0008,9123)	UI	1	Creator-Version UID		CreatorVersionUID
(0008,9124)	SQ	1	Derivation Image Sequence		DerivationImageSequence
(0008,9154)	SQ	1	Source Image Evidence Sequence		SourceImageEvidenceSequence
(0008,9205)	CS	1	Pixel Presentation		PixelPresentation
(0008,9206)	CS	1	Volumetric Properties		VolumetricProperties
(0008,9207)	CS	1	Volume Based Calculation Technique		VolumeBasedCalculationTechnique
(0008,9208)	CS	1	Complex Image Component		ComplexImageComponent
(0008,9209)	CS	1	Acquisition Contrast		AcquisitionContrast
(0008,9215)	SQ	1	Derivation Code Sequence		DerivationCodeSequence
(0008,9237)	SQ	1	Referenced Presentation State Sequence		ReferencedPresentationStateSequence
(0008,9410)	SQ	1	Referenced Other Plane Sequence		ReferencedOtherPlaneSequence
(0008,9458)	SQ	1	Frame Display Sequence		FrameDisplaySequence
(0008,9459)	FL	1	Recommended Display Frame Rate in Float		RecommendedDisplayFrameRateInFloat
(0008,9460)	CS	1	Skip Frame Range Flag		SkipFrameRangeFlag
(0010,0010)	PN	1	Patient's Name		PatientName
(0010,0020)	LO	1	Patient ID		PatientID
(0010,0021)	LO	1	Issuer of Patient ID		IssuerOfPatientID
(0010,0022)	CS	1	Type of Patient ID		TypeOfPatientID
(0010,0024)	SQ	1	Issuer of Patient ID Qualifiers Sequence		IssuerOfPatientIDQualifiersSequence
(0010,0026)	SQ	1	Source Patient Group Identification Sequence		SourcePatientGroupIdentificationSequence
(0010,0027)	SQ	1	Group of Patients Identification Sequence		GroupOfPatientsIdentificationSequence
(0010,0028)	US	3	Subject Relative Position in Image		SubjectRelativePositionInImage
(0010,0030)	DA	1	Patient's Birth Date		PatientBirthDate
(0010,0032)	TM	1	Patient's Birth Time		PatientBirthTime
(0010,0033)	LO	1	Patient's Birth Date in Alternative Calendar		PatientBirthDateInAlternativeCalendar
(0010,0034)	LO	1	Patient's Death Date in Alternative Calendar		PatientDeathDateInAlternativeCalendar
(0010,0035)	CS	1	Patient's Alternative Calendar		PatientAlternativeCalendar
(0010,0040)	CS	1	Patient's Sex		PatientSex
(0010,0050)	SQ	1	Patient's Insurance Plan Code Sequence		PatientInsurancePlanCodeSequence
(0010,0101)	SQ	1	Patient's Primary Language Code Sequence		PatientPrimaryLanguageCodeSequence
(0010,0102)	SQ	1	Patient's Primary Language Modifier Code Sequence		PatientPrimaryLanguageModifierCodeSequence
(0010,0200)	CS	1	Quality Control Subject		QualityControlSubject
(0010,0201)	SQ	1	Quality Control Subject Type Code Sequence		QualityControlSubjectTypeCodeSequence
(0010,0212)	UC	1	Strain Description		StrainDescription
(0010,0213)	LO	1	Strain Nomenclature		StrainNomenclature
(0010,0214)	LO	1	Strain Stock Number		StrainStockNumber
(0010,0215)	SQ	1	Strain Source Registry Code Sequence		StrainSourceRegistryCodeSequence
(0010,0216)	SQ	1	Strain Stock Sequence		StrainStockSequence
(0010,0217)	LO	1	Strain Source		StrainSource
(0010,0218)	UT	1	Strain Additional Information		StrainAdditionalInformation
(0010,0219)	SQ	1	Strain Code Sequence		StrainCodeSequence
(0010,0221)	SQ	1	Genetic Modifications Sequence		GeneticModificationsSequence
(0010,0222)	UC	1	Genetic Modifications Description		GeneticModificationsDescription
(0010,0223)	LO	1	Genetic Modifications Nomenclature		GeneticModificationsNomenclature
(0010,0229)	SQ	1	Genetic Modifications Code Sequence		GeneticModificationsCodeSequence
(0010,1000)	LO	1-n	Other Patient IDs	RET	OtherPatientIDs
(0010,1001)	PN	1-n	Other Patient Names		OtherPatientNames
(0010,1002)	SQ	1	Other Patient IDs Sequence		OtherPatientIDsSequence
(0010,1005)	PN	1	Patient's Birth Name		PatientBirthName
(0010,1010)	AS	1	Patient's Age		PatientAge
(0010,1020)	DS	1	Patient's Size		PatientSize
(0010,1021)	SQ	1	Patient's Size Code Sequence		PatientSizeCodeSequence
(0010,1022)	DS	1	Patient's Body Mass Index		PatientBodyMassIndex
(0010,1023)	DS	1	Measured AP Dimension		MeasuredAPDimension
(0010,1024)	DS	1	Measured Lateral Dimension		MeasuredLateralDimension
(0010,1030)	DS	1	Patient's Weight		PatientWeight
(0010,1040)	LO	1	Patient's Address		PatientAddress
(0010,1050)	LO	1-n	Insurance Plan Identification	RET	InsurancePlanIdentification
(0010,1060)	PN	1	Patient's Mother's Birth Name		PatientMotherBirthName
(0010,1080)	LO	1	Military Rank		MilitaryRank
(0010,1081)	LO	1	Branch of Service		BranchOfService
(0010,1090)	LO	1	Medical Record Locator	RET	MedicalRecordLocator
(0010,1100)	SQ	1	Referenced Patient Photo Sequence		ReferencedPatientPhotoSequence
(0010,2000)	LO	1-n	Medical Alerts		MedicalAlerts
(0010,2110)	LO	1-n	Allergies		Allergies
(0010,2150)	LO	1	Country of Residence		CountryOfResidence
(0010,2152)	LO	1	Region of Residence		RegionOfResidence
(0010,2154)	SH	1-n	Patient's Telephone Numbers		PatientTelephoneNumbers
(0010,2155)	LT	1	Patient's Telecom Information		PatientTelecomInformation
(0010,2160)	SH	1	Ethnic Group		EthnicGroup
(0010,2180)	SH	1	Occupation		Occupation
(0010,21A0)	CS	1	Smoking Status		SmokingStatus
(0010,21B0)	LT	1	Additional Patient History		AdditionalPatientHistory
(0010,21C0)	US	1	Pregnancy Status		PregnancyStatus
(0010,21D0)	DA	1	Last Menstrual Date		LastMenstrualDate
(0010,21F0)	LO	1	Patient's Religious Preference		PatientReligiousPreference
(0010,2201)	LO	1	Patient Species Description		PatientSpeciesDescription
(0010,2202)	SQ	1	Patient Species Code Sequence		PatientSpeciesCodeSequence
(0010,2203)	CS	1	Patient's Sex Neutered		PatientSexNeutered
(0010,2210)	CS	1	Anatomical Orientation Type		AnatomicalOrientationType
(0010,2292)	LO	1	Patient Breed Description		PatientBreedDescription
(0010,2293)	SQ	1	Patient Breed Code Sequence		PatientBreedCodeSequence
(0010,2294)	SQ	1	Breed Registration Sequence		BreedRegistrationSequence
(0010,2295)	LO	1	Breed Registration Number		BreedRegistrationNumber
(0010,2296)	SQ	1	Breed Registry Code Sequence		BreedRegistryCodeSequence
(0010,2297)	PN	1	Responsible Person		ResponsiblePerson
(0010,2298)	CS	1	Responsible Person Role		ResponsiblePersonRole
(0010,2299)	LO	1	Responsible Organization		ResponsibleOrganization
(0010,4000)	LT	1	Patient Comments		PatientComments
(0010,9431)	FL	1	Examined Body Thickness		ExaminedBodyThickness
(0012,0010)	LO	1	Clinical Trial Sponsor Name		ClinicalTrialSponsorName
(0012,0020)	LO	1	Clinical Trial Protocol ID		ClinicalTrialProtocolID
(0012,0021)	LO	1	Clinical Trial Protocol Name		ClinicalTrialProtocolName
(0012,0022)	LO	1	Issuer of Clinical Trial Protocol ID		IssuerOfClinicalTrialProtocolID
(0012,0023)	SQ	1	Other Clinical Trial Protocol IDs Sequence		OtherClinicalTrialProtocolIDsSequence
(0012,0030)	LO	1	Clinical Trial Site ID		ClinicalTrialSiteID
(0012,0031)	LO	1	Clinical Trial Site Name		ClinicalTrialSiteName
(0012,0032)	LO	1	Issuer of Clinical Trial Site ID		IssuerOfClinicalTrialSiteID
(0012,0040)	LO	1	Clinical Trial Subject ID		ClinicalTrialSubjectID
(0012,0041)	LO	1	Issuer of Clinical Trial Subject ID		IssuerOfClinicalTrialSubjectID
(0012,0042)	LO	1	Clinical Trial Subject Reading ID		ClinicalTrialSubjectReadingID
(0012,0043)	LO	1	Issuer of Clinical Trial Subject Reading ID		IssuerOfClinicalTrialSubjectReadingID
(0012,0050)	LO	1	Clinical Trial Time Point ID		ClinicalTrialTimePointID
(0012,0051)	ST	1	Clinical Trial Time Point Description		ClinicalTrialTimePointDescription
(0012,0052)	FD	1	Longitudinal Temporal Offset from Event		LongitudinalTemporalOffsetFromEvent
(0012,0053)	CS	1	Longitudinal Temporal Event Type		LongitudinalTemporalEventType
(0012,0054)	SQ	1	Clinical Trial Time Point Type Code Sequence		ClinicalTrialTimePointTypeCodeSequence
(0012,0055)	LO	1	Issuer of Clinical Trial Time Point ID		IssuerOfClinicalTrialTimePointID
(0012,0060)	LO	1	Clinical Trial Coordinating Center Name		ClinicalTrialCoordinatingCenterName
(0012,0062)	CS	1	Patient Identity Removed		PatientIdentityRemoved
(0012,0063)	LO	1-n	De-identification Method		DeidentificationMethod
(0012,0064)	SQ	1	De-identification Method Code Sequence		DeidentificationMethodCodeSequence
(0012,0071)	LO	1	Clinical Trial Series ID		ClinicalTrialSeriesID
(0012,0072)	LO	1	Clinical Trial Series Description		ClinicalTrialSeriesDescription
(0012,0073)	LO	1	Issuer of Clinical Trial Series ID		IssuerOfClinicalTrialSeriesID
(0012,0081)	LO	1	Clinical Trial Protocol Ethics Committee Name		ClinicalTrialProtocolEthicsCommitteeName
(0012,0082)	LO	1	Clinical Trial Protocol Ethics Committee Approval Number		ClinicalTrialProtocolEthicsCommitteeApprovalNumber
(0012,0083)	SQ	1	Consent for Clinical Trial Use Sequence		ConsentForClinicalTrialUseSequence
(0012,0084)	CS	1	Distribution Type		DistributionType
(0012,0085)	CS	1	Consent for Distribution Flag		ConsentForDistributionFlag
(0012,0086)	DA	1	Ethics Committee Approval Effectiveness Start Date		EthicsCommitteeApprovalEffectivenessStartDate
(0012,0087)	DA	1	Ethics Committee Approval Effectiveness End Date		EthicsCommitteeApprovalEffectivenessEndDate
(0014,0023)	ST	1	CAD File Format	RET	CADFileFormat
(0014,0024)	ST	1	Component Reference System	RET	ComponentReferenceSystem
(0014,0025)	ST	1	Component Manufacturing Procedure		ComponentManufacturingProcedure
(0014,0028)	ST	1	Component Manufacturer		ComponentManufacturer
(0014,0030)	DS	1-n	Material Thickness		MaterialThickness
(0014,0032)	DS	1-n	Material Pipe Diameter		MaterialPipeDiameter
(0014,0034)	DS	1-n	Material Isolation Diameter		MaterialIsolationDiameter
(0014,0042)	ST	1	Material Grade		MaterialGrade
(0014,0044)	ST	1	Material Properties Description		MaterialPropertiesDescription
(0014,0045)	ST	1	Material Properties File Format (Retired)	RET	MaterialPropertiesFileFormatRetired
(0014,0046)	LT	1	Material Notes		MaterialNotes
(0014,0050)	CS	1	Component Shape		ComponentShape
(0014,0052)	CS	1	Curvature Type		CurvatureType
(0014,0054)	DS	1	Outer Diameter		OuterDiameter
(0014,0056)	DS	1	Inner Diameter		InnerDiameter
(0014,0100)	LO	1-n	Component Welder IDs		ComponentWelderIDs
(0014,0101)	CS	1	Secondary Approval Status		SecondaryApprovalStatus
(0014,0102)	DA	1	Secondary Review Date		SecondaryReviewDate
(0014,0103)	TM	1	Secondary Review Time		SecondaryReviewTime
(0014,0104)	PN	1	Secondary Reviewer Name		SecondaryReviewerName
(0014,0105)	ST	1	Repair ID		RepairID
(0014,0106)	SQ	1	Multiple Component Approval Sequence		MultipleComponentApprovalSequence
(0014,0107)	CS	1-n	Other Approval Status		OtherApprovalStatus
(0014,0108)	CS	1-n	Other Secondary Approval Status		OtherSecondaryApprovalStatus
(0014,0200)	SQ	1	Data Element Label Sequence		DataElementLabelSequence
(0014,0201)	SQ	1	Data Element Label Item Sequence		DataElementLabelItemSequence
(0014,0202)	AT	1	Data Element		DataElement
(0014,0203)	LO	1	Data Element Name		DataElementName
(0014,0204)	LO	1	Data Element Description		DataElementDescription
(0014,0205)	CS	1	Data Element Conditionality		DataElementConditionality
(0014,0206)	IS	1	Data Element Minimum Characters		DataElementMinimumCharacters
(0014,0207)	IS	1	Data Element Maximum Characters		DataElementMaximumCharacters
(0014,1010)	ST	1	Actual Environmental Conditions		ActualEnvironmentalConditions
(0014,1020)	DA	1	Expiry Date		ExpiryDate
(0014,1040)	ST	1	Environmental Conditions		EnvironmentalConditions
(0014,2002)	SQ	1	Evaluator Sequence		EvaluatorSequence
(0014,2004)	IS	1	Evaluator Number		EvaluatorNumber
(0014,2006)	PN	1	Evaluator Name		EvaluatorName
(0014,2008)	IS	1	Evaluation Attempt		EvaluationAttempt
(0014,2012)	SQ	1	Indication Sequence		IndicationSequence
(0014,2014)	IS	1	Indication Number		IndicationNumber
(0014,2016)	SH	1	Indication Label		IndicationLabel
(0014,2018)	ST	1	Indication Description		IndicationDescription
(0014,201A)	CS	1-n	Indication Type		IndicationType
(0014,201C)	CS	1	Indication Disposition		IndicationDisposition
(0014,201E)	SQ	1	Indication ROI Sequence		IndicationROISequence
(0014,2030)	SQ	1	Indication Physical Property Sequence		IndicationPhysicalPropertySequence
(0014,2032)	SH	1	Property Label		PropertyLabel
(0014,2202)	IS	1	Coordinate System Number of Axes		CoordinateSystemNumberOfAxes
(0014,2204)	SQ	1	Coordinate System Axes Sequence		CoordinateSystemAxesSequence
(0014,2206)	ST	1	Coordinate System Axis Description		CoordinateSystemAxisDescription
(0014,2208)	CS	1	Coordinate System Data Set Mapping		CoordinateSystemDataSetMapping
(0014,220A)	IS	1	Coordinate System Axis Number		CoordinateSystemAxisNumber
(0014,220C)	CS	1	Coordinate System Axis Type		CoordinateSystemAxisType
(0014,220E)	CS	1	Coordinate System Axis Units		CoordinateSystemAxisUnits
(0014,2210)	OB	1	Coordinate System Axis Values		CoordinateSystemAxisValues
(0014,2220)	SQ	1	Coordinate System Transform Sequence		CoordinateSystemTransformSequence
(0014,2222)	ST	1	Transform Description		TransformDescription
(0014,2224)	IS	1	Transform Number of Axes		TransformNumberOfAxes
(0014,2226)	IS	1-n	Transform Order of Axes		TransformOrderOfAxes
(0014,2228)	CS	1	Transformed Axis Units		TransformedAxisUnits
(0014,222A)	DS	1-n	Coordinate System Transform Rotation and Scale Matrix		CoordinateSystemTransformRotationAndScaleMatrix
(0014,222C)	DS	1-n	Coordinate System Transform Translation Matrix		CoordinateSystemTransformTranslationMatrix
(0014,3011)	DS	1	Internal Detector Frame Time		InternalDetectorFrameTime
(0014,3012)	DS	1	Number of Frames Integrated		NumberOfFramesIntegrated
(0014,3020)	SQ	1	Detector Temperature Sequence		DetectorTemperatureSequence
(0014,3022)	ST	1	Sensor Name		SensorName
(0014,3024)	DS	1	Horizontal Offset of Sensor		HorizontalOffsetOfSensor
(0014,3026)	DS	1	Vertical Offset of Sensor		VerticalOffsetOfSensor
(0014,3028)	DS	1	Sensor Temperature		SensorTemperature
(0014,3040)	SQ	1	Dark Current Sequence		DarkCurrentSequence
(0014,3050)	OB or OW	1	Dark Current Counts		DarkCurrentCounts
(0014,3060)	SQ	1	Gain Correction Reference Sequence		GainCorrectionReferenceSequence
(0014,3070)	OB or OW	1	Air Counts		AirCounts
(0014,3071)	DS	1	KV Used in Gain Calibration		KVUsedInGainCalibration
(0014,3072)	DS	1	MA Used in Gain Calibration		MAUsedInGainCalibration
(0014,3073)	DS	1	Number of Frames Used for Integration		NumberOfFramesUsedForIntegration
(0014,3074)	LO	1	Filter Material Used in Gain Calibration		FilterMaterialUsedInGainCalibration
(0014,3075)	DS	1	Filter Thickness Used in Gain Calibration		FilterThicknessUsedInGainCalibration
(0014,3076)	DA	1	Date of Gain Calibration		DateOfGainCalibration
(0014,3077)	TM	1	Time of Gain Calibration		TimeOfGainCalibration
(0014,3080)	OB	1	Bad Pixel Image		BadPixelImage
(0014,3099)	LT	1	Calibration Notes		CalibrationNotes
(0014,3100)	LT	1	Linearity Correction Technique		LinearityCorrectionTechnique
(0014,3101)	LT	1	Beam Hardening Correction Technique		BeamHardeningCorrectionTechnique
(0014,4002)	SQ	1	Pulser Equipment Sequence		PulserEquipmentSequence
(0014,4004)	CS	1	Pulser Type		PulserType
(0014,4006)	LT	1	Pulser Notes		PulserNotes
(0014,4008)	SQ	1	Receiver Equipment Sequence		ReceiverEquipmentSequence
(0014,400A)	CS	1	Amplifier Type		AmplifierType
(0014,400C)	LT	1	Receiver Notes		ReceiverNotes
(0014,400E)	SQ	1	Pre-Amplifier Equipment Sequence		PreAmplifierEquipmentSequence
(0014,400F)	LT	1	Pre-Amplifier Notes		PreAmplifierNotes
(0014,4010)	SQ	1	Transmit Transducer Sequence		TransmitTransducerSequence
(0014,4011)	SQ	1	Receive Transducer Sequence		ReceiveTransducerSequence
(0014,4012)	US	1	Number of Elements		NumberOfElements
(0014,4013)	CS	1	Element Shape		ElementShape
(0014,4014)	DS	1	Element Dimension A		ElementDimensionA
(0014,4015)	DS	1	Element Dimension B		ElementDimensionB
(0014,4016)	DS	1	Element Pitch A		ElementPitchA
(0014,4017)	DS	1	Measured Beam Dimension A		MeasuredBeamDimensionA
(0014,4018)	DS	1	Measured Beam Dimension B		MeasuredBeamDimensionB
(0014,4019)	DS	1	Location of Measured Beam Diameter		LocationOfMeasuredBeamDiameter
(0014,401A)	DS	1	Nominal Frequency		NominalFrequency
(0014,401B)	DS	1	Measured Center Frequency		MeasuredCenterFrequency
(0014,401C)	DS	1	Measured Bandwidth		MeasuredBandwidth
(0014,401D)	DS	1	Element Pitch B		ElementPitchB
(0014,4020)	SQ	1	Pulser Settings Sequence		PulserSettingsSequence
(0014,4022)	DS	1	Pulse Width		PulseWidth
(0014,4024)	DS	1	Excitation Frequency		ExcitationFrequency
(0014,4026)	CS	1	Modulation Type		ModulationType
(0014,4028)	DS	1	Damping		Damping
(0014,4030)	SQ	1	Receiver Settings Sequence		ReceiverSettingsSequence
(0014,4031)	DS	1	Acquired Soundpath Length		AcquiredSoundpathLength
(0014,4032)	CS	1	Acquisition Compression Type		AcquisitionCompressionType
(0014,4033)	IS	1	Acquisition Sample Size		AcquisitionSampleSize
(0014,4034)	DS	1	Rectifier Smoothing		RectifierSmoothing
(0014,4035)	SQ	1	DAC Sequence		DACSequence
(0014,4036)	CS	1	DAC Type		DACType
(0014,4038)	DS	1-n	DAC Gain Points		DACGainPoints
(0014,403A)	DS	1-n	DAC Time Points		DACTimePoints
(0014,403C)	DS	1-n	DAC Amplitude		DACAmplitude
(0014,4040)	SQ	1	Pre-Amplifier Settings Sequence		PreAmplifierSettingsSequence
(0014,4050)	SQ	1	Transmit Transducer Settings Sequence		TransmitTransducerSettingsSequence
(0014,4051)	SQ	1	Receive Transducer Settings Sequence		ReceiveTransducerSettingsSequence
(0014,4052)	DS	1	Incident Angle		IncidentAngle
(0014,4054)	ST	1	Coupling Technique		CouplingTechnique
(0014,4056)	ST	1	Coupling Medium		CouplingMedium
(0014,4057)	DS	1	Coupling Velocity		CouplingVelocity
(0014,4058)	DS	1	Probe Center Location X		ProbeCenterLocationX
(0014,4059)	DS	1	Probe Center Location Z		ProbeCenterLocationZ
(0014,405A)	DS	1	Sound Path Length		SoundPathLength
(0014,405C)	ST	1	Delay Law Identifier		DelayLawIdentifier
(0014,4060)	SQ	1	Gate Settings Sequence		GateSettingsSequence
(0014,4062)	DS	1	Gate Threshold		GateThreshold
(0014,4064)	DS	1	Velocity of Sound		VelocityOfSound
(0014,4070)	SQ	1	Calibration Settings Sequence		CalibrationSettingsSequence
(0014,4072)	ST	1	Calibration Procedure		CalibrationProcedure
(0014,4074)	SH	1	Procedure Version		ProcedureVersion
(0014,4076)	DA	1	Procedure Creation Date		ProcedureCreationDate
(0014,4078)	DA	1	Procedure Expiration Date		ProcedureExpirationDate
(0014,407A)	DA	1	Procedure Last Modified Date		ProcedureLastModifiedDate
(0014,407C)	TM	1-n	Calibration Time		CalibrationTime
(0014,407E)	DA	1-n	Calibration Date		CalibrationDate
(0014,4080)	SQ	1	Probe Drive Equipment Sequence		ProbeDriveEquipmentSequence
(0014,4081)	CS	1	Drive Type		DriveType
(0014,4082)	LT	1	Probe Drive Notes		ProbeDriveNotes
(0014,4083)	SQ	1	Drive Probe Sequence		DriveProbeSequence
(0014,4084)	DS	1	Probe Inductance		ProbeInductance
(0014,4085)	DS	1	Probe Resistance		ProbeResistance
(0014,4086)	SQ	1	Receive Probe Sequence		ReceiveProbeSequence
(0014,4087)	SQ	1	Probe Drive Settings Sequence		ProbeDriveSettingsSequence
(0014,4088)	DS	1	Bridge Resistors		BridgeResistors
(0014,4089)	DS	1	Probe Orientation Angle		ProbeOrientationAngle
(0014,408B)	DS	1	User Selected Gain Y		UserSelectedGainY
(0014,408C)	DS	1	User Selected Phase		UserSelectedPhase
(0014,408D)	DS	1	User Selected Offset X		UserSelectedOffsetX
(0014,408E)	DS	1	User Selected Offset Y		UserSelectedOffsetY
(0014,4091)	SQ	1	Channel Settings Sequence		ChannelSettingsSequence
(0014,4092)	DS	1	Channel Threshold		ChannelThreshold
(0014,409A)	SQ	1	Scanner Settings Sequence		ScannerSettingsSequence
(0014,409B)	ST	1	Scan Procedure		ScanProcedure
(0014,409C)	DS	1	Translation Rate X		TranslationRateX
(0014,409D)	DS	1	Translation Rate Y		TranslationRateY
(0014,409F)	DS	1	Channel Overlap		ChannelOverlap
(0014,40A0)	LO	1-n	Image Quality Indicator Type		ImageQualityIndicatorType
(0014,40A1)	LO	1-n	Image Quality Indicator Material		ImageQualityIndicatorMaterial
(0014,40A2)	LO	1-n	Image Quality Indicator Size		ImageQualityIndicatorSize
(0014,5002)	IS	1	LINAC Energy		LINACEnergy
(0014,5004)	IS	1	LINAC Output		LINACOutput
(0014,5100)	US	1	Active Aperture		ActiveAperture
(0014,5101)	DS	1	Total Aperture		TotalAperture
(0014,5102)	DS	1	Aperture Elevation		ApertureElevation
(0014,5103)	DS	1	Main Lobe Angle		MainLobeAngle
(0014,5104)	DS	1	Main Roof Angle		MainRoofAngle
(0014,5105)	CS	1	Connector Type		ConnectorType
(0014,5106)	SH	1	Wedge Model Number		WedgeModelNumber
(0014,5107)	DS	1	Wedge Angle Float		WedgeAngleFloat
(0014,5108)	DS	1	Wedge Roof Angle		WedgeRoofAngle
(0014,5109)	CS	1	Wedge Element 1 Position		WedgeElement1Position
(0014,510A)	DS	1	Wedge Material Velocity		WedgeMaterialVelocity
(0014,510B)	SH	1	Wedge Material		WedgeMaterial
(0014,510C)	DS	1	Wedge Offset Z		WedgeOffsetZ
(0014,510D)	DS	1	Wedge Origin Offset X		WedgeOriginOffsetX
(0014,510E)	DS	1	Wedge Time Delay		WedgeTimeDelay
(0014,510F)	SH	1	Wedge Name		WedgeName
(0014,5110)	SH	1	Wedge Manufacturer Name		WedgeManufacturerName
(0014,5111)	LO	1	Wedge Description		WedgeDescription
(0014,5112)	DS	1	Nominal Beam Angle		NominalBeamAngle
(0014,5113)	DS	1	Wedge Offset X		WedgeOffsetX
(0014,5114)	DS	1	Wedge Offset Y		WedgeOffsetY
(0014,5115)	DS	1	Wedge Total Length		WedgeTotalLength
(0014,5116)	DS	1	Wedge In Contact Length		WedgeInContactLength
(0014,5117)	DS	1	Wedge Front Gap		WedgeFrontGap
(0014,5118)	DS	1	Wedge Total Height		WedgeTotalHeight
(0014,5119)	DS	1	Wedge Front Height		WedgeFrontHeight
(0014,511A)	DS	1	Wedge Rear Height		WedgeRearHeight
(0014,511B)	DS	1	Wedge Total Width		WedgeTotalWidth
(0014,511C)	DS	1	Wedge In Contact Width		WedgeInContactWidth
(0014,511D)	DS	1	Wedge Chamfer Height		WedgeChamferHeight
(0014,511E)	CS	1	Wedge Curve		WedgeCurve
(0014,511F)	DS	1	Radius Along the Wedge		RadiusAlongWedge
(0016,0001)	DS	1	White Point		WhitePoint
(0016,0002)	DS	3	Primary Chromaticities		PrimaryChromaticities
(0016,0003)	UT	1	Battery Level		BatteryLevel
(0016,0004)	DS	1	Exposure Time in Seconds		ExposureTimeInSeconds
(0016,0005)	DS	1	F-Number		FNumber
(0016,0006)	IS	1	OECF Rows		OECFRows
(0016,0007)	IS	1	OECF Columns		OECFColumns
(0016,0008)	UC	1-n	OECF Column Names		OECFColumnNames
(0016,0009)	DS	1-n	OECF Values		OECFValues
(0016,000A)	IS	1	Spatial Frequency Response Rows		SpatialFrequencyResponseRows
(0016,000B)	IS	1	Spatial Frequency Response Columns		SpatialFrequencyResponseColumns
(0016,000C)	UC	1-n	Spatial Frequency Response Column Names		SpatialFrequencyResponseColumnNames
(0016,000D)	DS	1-n	Spatial Frequency Response Values		SpatialFrequencyResponseValues
(0016,000E)	IS	1	Color Filter Array Pattern Rows		ColorFilterArrayPatternRows
(0016,000F)	IS	1	Color Filter Array Pattern Columns		ColorFilterArrayPatternColumns
(0016,0010)	DS	1-n	Color Filter Array Pattern Values		ColorFilterArrayPatternValues
(0016,0011)	US	1	Flash Firing Status		FlashFiringStatus
(0016,0012)	US	1	Flash Return Status		FlashReturnStatus
(0016,0013)	US	1	Flash Mode		FlashMode
(0016,0014)	US	1	Flash Function Present		FlashFunctionPresent
(0016,0015)	US	1	Flash Red Eye Mode		FlashRedEyeMode
(0016,0016)	US	1	Exposure Program		ExposureProgram
(0016,0017)	UT	1	Spectral Sensitivity		SpectralSensitivity
(0016,0018)	IS	1	Photographic Sensitivity		PhotographicSensitivity
(0016,0019)	IS	1	Self Timer Mode		SelfTimerMode
(0016,001A)	US	1	Sensitivity Type		SensitivityType
(0016,001B)	IS	1	Standard Output Sensitivity		StandardOutputSensitivity
(0016,001C)	IS	1	Recommended Exposure Index		RecommendedExposureIndex
(0016,001D)	IS	1	ISO Speed		ISOSpeed
(0016,001E)	IS	1	ISO Speed Latitude yyy		ISOSpeedLatitudeyyy
(0016,001F)	IS	1	ISO Speed Latitude zzz		ISOSpeedLatitudezzz
(0016,0020)	UT	1	EXIF Version		EXIFVersion
(0016,0021)	DS	1	Shutter Speed Value		ShutterSpeedValue
(0016,0022)	DS	1	Aperture Value		ApertureValue
(0016,0023)	DS	1	Brightness Value		BrightnessValue
(0016,0024)	DS	1	Exposure Bias Value		ExposureBiasValue
(0016,0025)	DS	1	Max Aperture Value		MaxApertureValue
(0016,0026)	DS	1	Subject Distance		SubjectDistance
(0016,0027)	US	1	Metering Mode		MeteringMode
(0016,0028)	US	1	Light Source		LightSource
(0016,0029)	DS	1	Focal Length		FocalLength
(0016,002A)	IS	2-4	Subject Area		SubjectArea
(0016,002B)	OB	1	Maker Note		MakerNote
(0016,0030)	DS	1	Temperature		Temperature
(0016,0031)	DS	1	Humidity		Humidity
(0016,0032)	DS	1	Pressure		Pressure
(0016,0033)	DS	1	Water Depth		WaterDepth
(0016,0034)	DS	1	Acceleration		Acceleration
(0016,0035)	DS	1	Camera Elevation Angle		CameraElevationAngle
(0016,0036)	DS	1-2	Flash Energy		FlashEnergy
(0016,0037)	IS	2	Subject Location		SubjectLocation
(0016,0038)	DS	1	Photographic Exposure Index		PhotographicExposureIndex
(0016,0039)	US	1	Sensing Method		SensingMethod
(0016,003A)	US	1	File Source		FileSource
(0016,003B)	US	1	Scene Type		SceneType
(0016,0041)	US	1	Custom Rendered		CustomRendered
(0016,0042)	US	1	Exposure Mode		ExposureMode
(0016,0043)	US	1	White Balance		WhiteBalance
(0016,0044)	DS	1	Digital Zoom Ratio		DigitalZoomRatio
(0016,0045)	IS	1	Focal Length In 35mm Film		FocalLengthIn35mmFilm
(0016,0046)	US	1	Scene Capture Type		SceneCaptureType
(0016,0047)	US	1	Gain Control		GainControl
(0016,0048)	US	1	Contrast		Contrast
(0016,0049)	US	1	Saturation		Saturation
(0016,004A)	US	1	Sharpness		Sharpness
(0016,004B)	OB	1	Device Setting Description		DeviceSettingDescription
(0016,004C)	US	1	Subject Distance Range		SubjectDistanceRange
(0016,004D)	UT	1	Camera Owner Name		CameraOwnerName
(0016,004E)	DS	4	Lens Specification		LensSpecification
(0016,004F)	UT	1	Lens Make		LensMake
(0016,0050)	UT	1	Lens Model		LensModel
(0016,0051)	UT	1	Lens Serial Number		LensSerialNumber
(0016,0061)	CS	1	Interoperability Index		InteroperabilityIndex
(0016,0062)	OB	1	Interoperability Version		InteroperabilityVersion
(0016,0070)	OB	1	GPS Version ID		GPSVersionID
(0016,0071)	CS	1	GPS Latitude Ref		GPSLatitudeRef
(0016,0072)	DS	3	GPS Latitude		GPSLatitude
(0016,0073)	CS	1	GPS Longitude Ref		GPSLongitudeRef
(0016,0074)	DS	3	GPS Longitude		GPSLongitude
(0016,0075)	US	1	GPS Altitude Ref		GPSAltitudeRef
(0016,0076)	DS	1	GPS Altitude		GPSAltitude
(0016,0077)	DT	1	GPS Time Stamp		GPSTimeStamp
(0016,0078)	UT	1	GPS Satellites		GPSSatellites
(0016,0079)	CS	1	GPS Status		GPSStatus
(0016,007A)	CS	1	GPS Measure Mode		GPSMeasureMode
(0016,007B)	DS	1	GPS DOP		GPSDOP
(0016,007C)	CS	1	GPS Speed Ref		GPSSpeedRef
(0016,007D)	DS	1	GPS Speed		GPSSpeed
(0016,007E)	CS	1	GPS Track Ref		GPSTrackRef
(0016,007F)	DS	1	GPS Track		GPSTrack
(0016,0080)	CS	1	GPS Img Direction Ref		GPSImgDirectionRef
(0016,0081)	DS	1	GPS Img Direction		GPSImgDirection
(0016,0082)	UT	1	GPS Map Datum		GPSMapDatum
(0016,0083)	CS	1	GPS Dest Latitude Ref		GPSDestLatitudeRef
(0016,0084)	DS	3	GPS Dest Latitude		GPSDestLatitude
(0016,0085)	CS	1	GPS Dest Longitude Ref		GPSDestLongitudeRef
(0016,0086)	DS	3	GPS Dest Longitude		GPSDestLongitude
(0016,0087)	CS	1	GPS Dest Bearing Ref		GPSDestBearingRef
(0016,0088)	DS	1	GPS Dest Bearing		GPSDestBearing
(0016,0089)	CS	1	GPS Dest Distance Ref		GPSDestDistanceRef
(0016,008A)	DS	1	GPS Dest Distance		GPSDestDistance
(0016,008B)	OB	1	GPS Processing Method		GPSProcessingMethod
(0016,008C)	OB	1	GPS Area Information		GPSAreaInformation
(0016,008D)	DT	1	GPS Date Stamp		GPSDateStamp
(0016,008E)	IS	1	GPS Differential		GPSDifferential
(0016,1001)	CS	1	Light Source Polarization		LightSourcePolarization
(0016,1002)	DS	1	Emitter Color Temperature		EmitterColorTemperature
(0016,1003)	CS	1	Contact Method		ContactMethod
(0016,1004)	CS	1-n	Immersion Media		ImmersionMedia
(0016,1005)	DS	1	Optical Magnification Factor		OpticalMagnificationFactor
(0018,0010)	LO	1	Contrast/Bolus Agent		ContrastBolusAgent
(0018,0012)	SQ	1	Contrast/Bolus Agent Sequence		ContrastBolusAgentSequence
(0018,0013)	FL	1	Contrast/Bolus T1 Relaxivity		ContrastBolusT1Relaxivity
(0018,0014)	SQ	1	Contrast/Bolus Administration Route Sequence		ContrastBolusAdministrationRouteSequence
(0018,0015)	CS	1	Body Part Examined		BodyPartExamined
(0018,0020)	CS	1-n	Scanning Sequence		ScanningSequence
(0018,0021)	CS	1-n	Sequence Variant		SequenceVariant
(0018,0022)	CS	1-n	Scan Options		ScanOptions
(0018,0023)	CS	1	MR Acquisition Type		MRAcquisitionType
(0018,0024)	SH	1	Sequence Name		SequenceName
(0018,0025)	CS	1	Angio Flag		AngioFlag
(0018,0026)	SQ	1	Intervention Drug Information Sequence		InterventionDrugInformationSequence
(0018,0027)	TM	1	Intervention Drug Stop Time		InterventionDrugStopTime
(0018,0028)	DS	1	Intervention Drug Dose		InterventionDrugDose
(0018,0029)	SQ	1	Intervention Drug Code Sequence		InterventionDrugCodeSequence
(0018,002A)	SQ	1	Additional Drug Sequence		AdditionalDrugSequence
(0018,0030)	LO	1-n	Radionuclide	RET	Radionuclide
(0018,0031)	LO	1	Radiopharmaceutical		Radiopharmaceutical
(0018,0032)	DS	1	Energy Window Centerline	RET	EnergyWindowCenterline
(0018,0033)	DS	1-n	Energy Window Total Width	RET	EnergyWindowTotalWidth
(0018,0034)	LO	1	Intervention Drug Name		InterventionDrugName
(0018,0035)	TM	1	Intervention Drug Start Time		InterventionDrugStartTime
(0018,0036)	SQ	1	Intervention Sequence		InterventionSequence
(0018,0037)	CS	1	Therapy Type	RET	TherapyType
(0018,0038)	CS	1	Intervention Status		InterventionStatus
(0018,0039)	CS	1	Therapy Description	RET	TherapyDescription
(0018,003A)	ST	1	Intervention Description		InterventionDescription
(0018,0040)	IS	1	Cine Rate		CineRate
(0018,0042)	CS	1	Initial Cine Run State		InitialCineRunState
(0018,0050)	DS	1	Slice Thickness		SliceThickness
(0018,0060)	DS	1	KVP		KVP
(0018,0070)	IS	1	Counts Accumulated		CountsAccumulated
(0018,0071)	CS	1	Acquisition Termination Condition		AcquisitionTerminationCondition
(0018,0072)	DS	1	Effective Duration		EffectiveDuration
(0018,0073)	CS	1	Acquisition Start Condition		AcquisitionStartCondition
(0018,0074)	IS	1	Acquisition Start Condition Data		AcquisitionStartConditionData
(0018,0075)	IS	1	Acquisition Termination Condition Data		AcquisitionTerminationConditionData
(0018,0080)	DS	1	Repetition Time		RepetitionTime
(0018,0081)	DS	1	Echo Time		EchoTime
(0018,0082)	DS	1	Inversion Time		InversionTime
(0018,0083)	DS	1	Number of Averages		NumberOfAverages
(0018,0084)	DS	1	Imaging Frequency		ImagingFrequency
(0018,0085)	SH	1	Imaged Nucleus		ImagedNucleus
(0018,0086)	IS	1-n	Echo Number(s)		EchoNumbers
(0018,0087)	DS	1	Magnetic Field Strength		MagneticFieldStrength
(0018,0088)	DS	1	Spacing Between Slices		SpacingBetweenSlices
(0018,0089)	IS	1	Number of Phase Encoding Steps		NumberOfPhaseEncodingSteps
(0018,0090)	DS	1	Data Collection Diameter		DataCollectionDiameter
(0018,0091)	IS	1	Echo Train Length		EchoTrainLength
(0018,0093)	DS	1	Percent Sampling		PercentSampling
(0018,0094)	DS	1	Percent Phase Field of View		PercentPhaseFieldOfView
(0018,0095)	DS	1	Pixel Bandwidth		PixelBandwidth
(0018,1000)	LO	1	Device Serial Number		DeviceSerialNumber
(0018,1002)	UI	1	Device UID		DeviceUID
(0018,1003)	LO	1	Device ID		DeviceID
(0018,1004)	LO	1	Plate ID		PlateID
(0018,1005)	LO	1	Generator ID		GeneratorID
(0018,1006)	LO	1	Grid ID		GridID
(0018,1007)	LO	1	Cassette ID		CassetteID
(0018,1008)	LO	1	Gantry ID		GantryID
(0018,1009)	UT	1	Unique Device Identifier		UniqueDeviceIdentifier
(0018,100A)	SQ	1	UDI Sequence		UDISequence
(0018,100B)	UI	1-n	Manufacturer's Device Class UID		ManufacturerDeviceClassUID
(0018,1010)	LO	1	Secondary Capture Device ID		SecondaryCaptureDeviceID
(0018,1011)	LO	1	Hardcopy Creation Device ID	RET	HardcopyCreationDeviceID
(0018,1012)	DA	1	Date of Secondary Capture		DateOfSecondaryCapture
(0018,1014)	TM	1	Time of Secondary Capture		TimeOfSecondaryCapture
(0018,1016)	LO	1	Secondary Capture Device Manufacturer		SecondaryCaptureDeviceManufacturer
(0018,1017)	LO	1	Hardcopy Device Manufacturer	RET	HardcopyDeviceManufacturer
(0018,1018)	LO	1	Secondary Capture Device Manufacturer's Model Name		SecondaryCaptureDeviceManufacturerModelName
(0018,1019)	LO	1-n	Secondary Capture Device Software Versions		SecondaryCaptureDeviceSoftwareVersions
(0018,101A)	LO	1-n	Hardcopy Device Software Version	RET	HardcopyDeviceSoftwareVersion
(0018,101B)	LO	1	Hardcopy Device Manufacturer's Model Name	RET	HardcopyDeviceManufacturerModelName
(0018,1020)	LO	1-n	Software Versions		SoftwareVersions
(0018,1022)	SH	1	Video Image Format Acquired		VideoImageFormatAcquired
(0018,1023)	LO	1	Digital Image Format Acquired		DigitalImageFormatAcquired
(0018,1030)	LO	1	Protocol Name		ProtocolName
(0018,1040)	LO	1	Contrast/Bolus Route		ContrastBolusRoute
(0018,1041)	DS	1	Contrast/Bolus Volume		ContrastBolusVolume
(0018,1042)	TM	1	Contrast/Bolus Start Time		ContrastBolusStartTime
(0018,1043)	TM	1	Contrast/Bolus Stop Time		ContrastBolusStopTime
(0018,1044)	DS	1	Contrast/Bolus Total Dose		ContrastBolusTotalDose
(0018,1045)	IS	1	Syringe Counts		SyringeCounts
(0018,1046)	DS	1-n	Contrast Flow Rate		ContrastFlowRate
(0018,1047)	DS	1-n	Contrast Flow Duration		ContrastFlowDuration
(0018,1048)	CS	1	Contrast/Bolus Ingredient		ContrastBolusIngredient
(0018,1049)	DS	1	Contrast/Bolus Ingredient Concentration		ContrastBolusIngredientConcentration
(0018,1050)	DS	1	Spatial Resolution		SpatialResolution
(0018,1060)	DS	1	Trigger Time		TriggerTime
(0018,1061)	LO	1	Trigger Source or Type		TriggerSourceOrType
(0018,1062)	IS	1	Nominal Interval		NominalInterval
(0018,1063)	DS	1	Frame Time		FrameTime
(0018,1064)	LO	1	Cardiac Framing Type		CardiacFramingType
(0018,1065)	DS	1-n	Frame Time Vector		FrameTimeVector
(0018,1066)	DS	1	Frame Delay		FrameDelay
(0018,1067)	DS	1	Image Trigger Delay		ImageTriggerDelay
(0018,1068)	DS	1	Multiplex Group Time Offset		MultiplexGroupTimeOffset
(0018,1069)	DS	1	Trigger Time Offset		TriggerTimeOffset
(0018,106A)	CS	1	Synchronization Trigger		SynchronizationTrigger
(0018,106C)	US	2	Synchronization Channel		SynchronizationChannel
(0018,106E)	UL	1	Trigger Sample Position		TriggerSamplePosition
(0018,1070)	LO	1	Radiopharmaceutical Route		RadiopharmaceuticalRoute
(0018,1071)	DS	1	Radiopharmaceutical Volume		RadiopharmaceuticalVolume
(0018,1072)	TM	1	Radiopharmaceutical Start Time		RadiopharmaceuticalStartTime
(0018,1073)	TM	1	Radiopharmaceutical Stop Time		RadiopharmaceuticalStopTime
(0018,1074)	DS	1	Radionuclide Total Dose		RadionuclideTotalDose
(0018,1075)	DS	1	Radionuclide Half Life		RadionuclideHalfLife
(0018,1076)	DS	1	Radionuclide Positron Fraction		RadionuclidePositronFraction
(0018,1077)	DS	1	Radiopharmaceutical Specific Activity		RadiopharmaceuticalSpecificActivity
(0018,1078)	DT	1	Radiopharmaceutical Start DateTime		RadiopharmaceuticalStartDateTime
(0018,1079)	DT	1	Radiopharmaceutical Stop DateTime		RadiopharmaceuticalStopDateTime
(0018,1080)	CS	1	Beat Rejection Flag		BeatRejectionFlag
(0018,1081)	IS	1	Low R-R Value		LowRRValue
(0018,1082)	IS	1	High R-R Value		HighRRValue
(0018,1083)	IS	1	Intervals Acquired		IntervalsAcquired
(0018,1084)	IS	1	Intervals Rejected		IntervalsRejected
(0018,1085)	LO	1	PVC Rejection		PVCRejection
(0018,1086)	IS	1	Skip Beats		SkipBeats
(0018,1088)	IS	1	Heart Rate		HeartRate
(0018,1090)	IS	1	Cardiac Number of Images		CardiacNumberOfImages
(0018,1094)	IS	1	Trigger Window		TriggerWindow
(0018,1100)	DS	1	Reconstruction Diameter		ReconstructionDiameter
(0018,1110)	DS	1	Distance Source to Detector		DistanceSourceToDetector
(0018,1111)	DS	1	Distance Source to Patient		DistanceSourceToPatient
(0018,1114)	DS	1	Estimated Radiographic Magnification Factor		EstimatedRadiographicMagnificationFactor
(0018,1120)	DS	1	Gantry/Detector Tilt		GantryDetectorTilt
(0018,1121)	DS	1	Gantry/Detector Slew		GantryDetectorSlew
(0018,1130)	DS	1	Table Height		TableHeight
(0018,1131)	DS	1	Table Traverse		TableTraverse
(0018,1134)	CS	1	Table Motion		TableMotion
(0018,1135)	DS	1-n	Table Vertical Increment		TableVerticalIncrement
(0018,1136)	DS	1-n	Table Lateral Increment		TableLateralIncrement
(0018,1137)	DS	1-n	Table Longitudinal Increment		TableLongitudinalIncrement
(0018,1138)	DS	1	Table Angle		TableAngle
(0018,113A)	CS	1	Table Type		TableType
(0018,1140)	CS	1	Rotation Direction		RotationDirection
(0018,1141)	DS	1	Angular Position	RET	AngularPosition
(0018,1142)	DS	1-n	Radial Position		RadialPosition
(0018,1143)	DS	1	Scan Arc		ScanArc
(0018,1144)	DS	1	Angular Step		AngularStep
(0018,1145)	DS	1	Center of Rotation Offset		CenterOfRotationOffset
(0018,1146)	DS	1-n	Rotation Offset	RET	RotationOffset
(0018,1147)	CS	1	Field of View Shape		FieldOfViewShape
(0018,1149)	IS	1-2	Field of View Dimension(s)		FieldOfViewDimensions
(0018,1150)	IS	1	Exposure Time		ExposureTime
(0018,1151)	IS	1	X-Ray Tube Current		XRayTubeCurrent
(0018,1152)	IS	1	Exposure		Exposure
(0018,1153)	IS	1	Exposure in µAs		ExposureInuAs
(0018,1154)	DS	1	Average Pulse Width		AveragePulseWidth
(0018,1155)	CS	1	Radiation Setting		RadiationSetting
(0018,1156)	CS	1	Rectification Type		RectificationType
(0018,115A)	CS	1	Radiation Mode		RadiationMode
(0018,115E)	DS	1	Image and Fluoroscopy Area Dose Product		ImageAndFluoroscopyAreaDoseProduct
(0018,1160)	SH	1	Filter Type		FilterType
(0018,1161)	LO	1-n	Type of Filters		TypeOfFilters
(0018,1162)	DS	1	Intensifier Size		IntensifierSize
(0018,1164)	DS	2	Imager Pixel Spacing		ImagerPixelSpacing
(0018,1166)	CS	1-n	Grid		Grid
(0018,1170)	IS	1	Generator Power		GeneratorPower
(0018,1180)	SH	1	Collimator/grid Name		CollimatorGridName
(0018,1181)	CS	1	Collimator Type		CollimatorType
(0018,1182)	IS	1-2	Focal Distance		FocalDistance
(0018,1183)	DS	1-2	X Focus Center		XFocusCenter
(0018,1184)	DS	1-2	Y Focus Center		YFocusCenter
(0018,1190)	DS	1-n	Focal Spot(s)		FocalSpots
(0018,1191)	CS	1	Anode Target Material		AnodeTargetMaterial
(0018,11A0)	DS	1	Body Part Thickness		BodyPartThickness
(0018,11A2)	DS	1	Compression Force		CompressionForce
(0018,11A3)	DS	1	Compression Pressure		CompressionPressure
(0018,11A4)	LO	1	Paddle Description		PaddleDescription
(0018,11A5)	DS	1	Compression Contact Area		CompressionContactArea
(0018,11B0)	LO	1	Acquisition Mode		AcquisitionMode
(0018,11B1)	LO	1	Dose Mode Name		DoseModeName
(0018,11B2)	CS	1	Acquired Subtraction Mask Flag		AcquiredSubtractionMaskFlag
(0018,11B3)	CS	1	Fluoroscopy Persistence Flag		FluoroscopyPersistenceFlag
(0018,11B4)	CS	1	Fluoroscopy Last Image Hold Persistence Flag		FluoroscopyLastImageHoldPersistenceFlag
(0018,11B5)	IS	1	Upper Limit Number Of Persistent Fluoroscopy Frames		UpperLimitNumberOfPersistentFluoroscopyFrames
(0018,11B6)	CS	1	Contrast/Bolus Auto Injection Trigger Flag		ContrastBolusAutoInjectionTriggerFlag
(0018,11B7)	FD	1	Contrast/Bolus Injection Delay		ContrastBolusInjectionDelay
(0018,11B8)	SQ	1	XA Acquisition Phase Details Sequence		XAAcquisitionPhaseDetailsSequence
(0018,11B9)	FD	1	XA Acquisition Frame Rate		XAAcquisitionFrameRate
(0018,11BA)	SQ	1	XA Plane Details Sequence		XAPlaneDetailsSequence
(0018,11BB)	LO	1	Acquisition Field of View Label		AcquisitionFieldOfViewLabel
(0018,11BC)	SQ	1	X-Ray Filter Details Sequence		XRayFilterDetailsSequence
(0018,11BD)	FD	1	XA Acquisition Duration		XAAcquisitionDuration
(0018,11BE)	CS	1	Reconstruction Pipeline Type		ReconstructionPipelineType
(0018,11BF)	SQ	1	Image Filter Details Sequence		ImageFilterDetailsSequence
(0018,11C0)	CS	1	Applied Mask Subtraction Flag		AppliedMaskSubtractionFlag
(0018,11C1)	SQ	1	Requested Series Description Code Sequence		RequestedSeriesDescriptionCodeSequence
(0018,1200)	DA	1-n	Date of Last Calibration		DateOfLastCalibration
(0018,1201)	TM	1-n	Time of Last Calibration		TimeOfLastCalibration
(0018,1202)	DT	1	DateTime of Last Calibration		DateTimeOfLastCalibration
(0018,1203)	DT	1	Calibration DateTime		CalibrationDateTime
(0018,1204)	DA	1	Date of Manufacture		DateOfManufacture
(0018,1205)	DA	1	Date of Installation		DateOfInstallation
(0018,1210)	SH	1-n	Convolution Kernel		ConvolutionKernel
(0018,1240)	IS	1-n	Upper/Lower Pixel Values	RET	UpperLowerPixelValues
(0018,1242)	IS	1	Actual Frame Duration		ActualFrameDuration
(0018,1243)	IS	1	Count Rate		CountRate
(0018,1244)	US	1	Preferred Playback Sequencing		PreferredPlaybackSequencing
(0018,1250)	SH	1	Receive Coil Name		ReceiveCoilName
(0018,1251)	SH	1	Transmit Coil Name		TransmitCoilName
(0018,1260)	SH	1	Plate Type		PlateType
(0018,1261)	LO	1	Phosphor Type		PhosphorType
(0018,1271)	FD	1	Water Equivalent Diameter		WaterEquivalentDiameter
(0018,1272)	SQ	1	Water Equivalent Diameter Calculation Method Code Sequence		WaterEquivalentDiameterCalculationMethodCodeSequence
(0018,1300)	DS	1	Scan Velocity		ScanVelocity
(0018,1301)	CS	1-n	Whole Body Technique		WholeBodyTechnique
(0018,1302)	IS	1	Scan Length		ScanLength
(0018,1310)	US	4	Acquisition Matrix		AcquisitionMatrix
(0018,1312)	CS	1	In-plane Phase Encoding Direction		InPlanePhaseEncodingDirection
(0018,1314)	DS	1	Flip Angle		FlipAngle
(0018,1315)	CS	1	Variable Flip Angle Flag		VariableFlipAngleFlag
(0018,1316)	DS	1	SAR		SAR
(0018,1318)	DS	1	dB/dt		dBdt
(0018,1320)	FL	1	B1rms		B1rms
(0018,1400)	LO	1	Acquisition Device Processing Description		AcquisitionDeviceProcessingDescription
(0018,1401)	LO	1	Acquisition Device Processing Code		AcquisitionDeviceProcessingCode
(0018,1402)	CS	1	Cassette Orientation		CassetteOrientation
(0018,1403)	CS	1	Cassette Size		CassetteSize
(0018,1404)	US	1	Exposures on Plate		ExposuresOnPlate
(0018,1405)	IS	1	Relative X-Ray Exposure		RelativeXRayExposure
(0018,1411)	DS	1	Exposure Index		ExposureIndex
(0018,1412)	DS	1	Target Exposure Index		TargetExposureIndex
(0018,1413)	DS	1	Deviation Index		DeviationIndex
(0018,1450)	DS	1	Column Angulation		ColumnAngulation
(0018,1460)	DS	1	Tomo Layer Height		TomoLayerHeight
(0018,1470)	DS	1	Tomo Angle		TomoAngle
(0018,1480)	DS	1	Tomo Time		TomoTime
(0018,1490)	CS	1	Tomo Type		TomoType
(0018,1491)	CS	1	Tomo Class		TomoClass
(0018,1495)	IS	1	Number of Tomosynthesis Source Images		NumberOfTomosynthesisSourceImages
(0018,1500)	CS	1	Positioner Motion		PositionerMotion
(0018,1508)	CS	1	Positioner Type		PositionerType
(0018,1510)	DS	1	Positioner Primary Angle		PositionerPrimaryAngle
(0018,1511)	DS	1	Positioner Secondary Angle		PositionerSecondaryAngle
(0018,1520)	DS	1-n	Positioner Primary Angle Increment		PositionerPrimaryAngleIncrement
(0018,1521)	DS	1-n	Positioner Secondary Angle Increment		PositionerSecondaryAngleIncrement
(0018,1530)	DS	1	Detector Primary Angle		DetectorPrimaryAngle
(0018,1531)	DS	1	Detector Secondary Angle		DetectorSecondaryAngle
(0018,1600)	CS	1-3	Shutter Shape		ShutterShape
(0018,1602)	IS	1	Shutter Left Vertical Edge		ShutterLeftVerticalEdge
(0018,1604)	IS	1	Shutter Right Vertical Edge		ShutterRightVerticalEdge
(0018,1606)	IS	1	Shutter Upper Horizontal Edge		ShutterUpperHorizontalEdge
(0018,1608)	IS	1	Shutter Lower Horizontal Edge		ShutterLowerHorizontalEdge
(0018,1610)	IS	2	Center of Circular Shutter		CenterOfCircularShutter
(0018,1612)	IS	1	Radius of Circular Shutter		RadiusOfCircularShutter
(0018,1620)	IS	2-2n	Vertices of the Polygonal Shutter		VerticesOfThePolygonalShutter
(0018,1622)	US	1	Shutter Presentation Value		ShutterPresentationValue
(0018,1623)	US	1	Shutter Overlay Group		ShutterOverlayGroup
(0018,1624)	US	3	Shutter Presentation Color CIELab Value		ShutterPresentationColorCIELabValue
(0018,1630)	CS	1	Outline Shape Type		OutlineShapeType
(0018,1631)	FD	1	Outline Left Vertical Edge		OutlineLeftVerticalEdge
(0018,1632)	FD	1	Outline Right Vertical Edge		OutlineRightVerticalEdge
(0018,1633)	FD	1	Outline Upper Horizontal Edge		OutlineUpperHorizontalEdge
(0018,1634)	FD	1	Outline Lower Horizontal Edge		OutlineLowerHorizontalEdge
(0018,1635)	FD	2	Center of Circular Outline		CenterOfCircularOutline
(0018,1636)	FD	1	Diameter of Circular Outline		DiameterOfCircularOutline
(0018,1637)	UL	1	Number of Polygonal Vertices		NumberOfPolygonalVertices
(0018,1638)	OF	1	Vertices of the Polygonal Outline		VerticesOfThePolygonalOutline
(0018,1700)	CS	1-3	Collimator Shape		CollimatorShape
(0018,1702)	IS	1	Collimator Left Vertical Edge		CollimatorLeftVerticalEdge
(0018,1704)	IS	1	Collimator Right Vertical Edge		CollimatorRightVerticalEdge
(0018,1706)	IS	1	Collimator Upper Horizontal Edge		CollimatorUpperHorizontalEdge
(0018,1708)	IS	1	Collimator Lower Horizontal Edge		CollimatorLowerHorizontalEdge
(0018,1710)	IS	2	Center of Circular Collimator		CenterOfCircularCollimator
(0018,1712)	IS	1	Radius of Circular Collimator		RadiusOfCircularCollimator
(0018,1720)	IS	2-2n	Vertices of the Polygonal Collimator		VerticesOfThePolygonalCollimator
(0018,1800)	CS	1	Acquisition Time Synchronized		AcquisitionTimeSynchronized
(0018,1801)	SH	1	Time Source		TimeSource
(0018,1802)	CS	1	Time Distribution Protocol		TimeDistributionProtocol
(0018,1803)	LO	1	NTP Source Address		NTPSourceAddress
(0018,2001)	IS	1-n	Page Number Vector		PageNumberVector
(0018,2002)	SH	1-n	Frame Label Vector		FrameLabelVector
(0018,2003)	DS	1-n	Frame Primary Angle Vector		FramePrimaryAngleVector
(0018,2004)	DS	1-n	Frame Secondary Angle Vector		FrameSecondaryAngleVector
(0018,2005)	DS	1-n	Slice Location Vector		SliceLocationVector
(0018,2006)	SH	1-n	Display Window Label Vector		DisplayWindowLabelVector
(0018,2010)	DS	2	Nominal Scanned Pixel Spacing		NominalScannedPixelSpacing
(0018,2020)	CS	1	Digitizing Device Transport Direction		DigitizingDeviceTransportDirection
(0018,2030)	DS	1	Rotation of Scanned Film		RotationOfScannedFilm
(0018,2041)	SQ	1	Biopsy Target Sequence		BiopsyTargetSequence
(0018,2042)	UI	1	Target UID		TargetUID
(0018,2043)	FL	2	Localizing Cursor Position		LocalizingCursorPosition
(0018,2044)	FL	3	Calculated Target Position		CalculatedTargetPosition
(0018,2045)	SH	1	Target Label		TargetLabel
(0018,2046)	FL	1	Displayed Z Value		DisplayedZValue
(0018,3100)	CS	1	IVUS Acquisition		IVUSAcquisition
(0018,3101)	DS	1	IVUS Pullback Rate		IVUSPullbackRate
(0018,3102)	DS	1	IVUS Gated Rate		IVUSGatedRate
(0018,3103)	IS	1	IVUS Pullback Start Frame Number		IVUSPullbackStartFrameNumber
(0018,3104)	IS	1	IVUS Pullback Stop Frame Number		IVUSPullbackStopFrameNumber
(0018,3105)	IS	1-n	Lesion Number		LesionNumber
(0018,4000)	LT	1	Acquisition Comments	RET	AcquisitionComments
(0018,5000)	SH	1-n	Output Power		OutputPower
(0018,5010)	LO	1-n	Transducer Data		TransducerData
(0018,5011)	SQ	1	Transducer Identification Sequence		TransducerIdentificationSequence
(0018,5012)	DS	1	Focus Depth		FocusDepth
(0018,5020)	LO	1	Processing Function		ProcessingFunction
(0018,5021)	LO	1	Postprocessing Function	RET	PostprocessingFunction
(0018,5022)	DS	1	Mechanical Index		MechanicalIndex
(0018,5024)	DS	1	Bone Thermal Index		BoneThermalIndex
(0018,5026)	DS	1	Cranial Thermal Index		CranialThermalIndex
(0018,5027)	DS	1	Soft Tissue Thermal Index		SoftTissueThermalIndex
(0018,5028)	DS	1	Soft Tissue-focus Thermal Index		SoftTissueFocusThermalIndex
(0018,5029)	DS	1	Soft Tissue-surface Thermal Index		SoftTissueSurfaceThermalIndex
(0018,5030)	DS	1	Dynamic Range	RET	DynamicRange
(0018,5040)	DS	1	Total Gain	RET	TotalGain
(0018,5050)	IS	1	Depth of Scan Field		DepthOfScanField
(0018,5100)	CS	1	Patient Position		PatientPosition
(0018,5101)	CS	1	View Position		ViewPosition
(0018,5104)	SQ	1	Projection Eponymous Name Code Sequence		ProjectionEponymousNameCodeSequence
(0018,5210)	DS	6	Image Transformation Matrix	RET	ImageTransformationMatrix
(0018,5212)	DS	3	Image Translation Vector	RET	ImageTranslationVector
(0018,6000)	DS	1	Sensitivity		Sensitivity
(0018,6011)	SQ	1	Sequence of Ultrasound Regions		SequenceOfUltrasoundRegions
(0018,6012)	US	1	Region Spatial Format		RegionSpatialFormat
(0018,6014)	US	1	Region Data Type		RegionDataType
(0018,6016)	UL	1	Region Flags		RegionFlags
(0018,6018)	UL	1	Region Location Min X0		RegionLocationMinX0
(0018,601A)	UL	1	Region Location Min Y0		RegionLocationMinY0
(0018,601C)	UL	1	Region Location Max X1		RegionLocationMaxX1
(0018,601E)	UL	1	Region Location Max Y1		RegionLocationMaxY1
(0018,6020)	SL	1	Reference Pixel X0		ReferencePixelX0
(0018,6022)	SL	1	Reference Pixel Y0		ReferencePixelY0
(0018,6024)	US	1	Physical Units X Direction		PhysicalUnitsXDirection
(0018,6026)	US	1	Physical Units Y Direction		PhysicalUnitsYDirection
(0018,6028)	FD	1	Reference Pixel Physical Value X		ReferencePixelPhysicalValueX
(0018,602A)	FD	1	Reference Pixel Physical Value Y		ReferencePixelPhysicalValueY
(0018,602C)	FD	1	Physical Delta X		PhysicalDeltaX
(0018,602E)	FD	1	Physical Delta Y		PhysicalDeltaY
(0018,6030)	UL	1	Transducer Frequency		TransducerFrequency
(0018,6031)	CS	1	Transducer Type		TransducerType
(0018,6032)	UL	1	Pulse Repetition Frequency		PulseRepetitionFrequency
(0018,6034)	FD	1	Doppler Correction Angle		DopplerCorrectionAngle
(0018,6036)	FD	1	Steering Angle		SteeringAngle
(0018,6038)	UL	1	Doppler Sample Volume X Position (Retired)	RET	DopplerSampleVolumeXPositionRetired
(0018,6039)	SL	1	Doppler Sample Volume X Position		DopplerSampleVolumeXPosition
(0018,603A)	UL	1	Doppler Sample Volume Y Position (Retired)	RET	DopplerSampleVolumeYPositionRetired
(0018,603B)	SL	1	Doppler Sample Volume Y Position		DopplerSampleVolumeYPosition
(0018,603C)	UL	1	TM-Line Position X0 (Retired)	RET	TMLinePositionX0Retired
(0018,603D)	SL	1	TM-Line Position X0		TMLinePositionX0
(0018,603E)	UL	1	TM-Line Position Y0 (Retired)	RET	TMLinePositionY0Retired
(0018,603F)	SL	1	TM-Line Position Y0		TMLinePositionY0
(0018,6040)	UL	1	TM-Line Position X1 (Retired)	RET	TMLinePositionX1Retired
(0018,6041)	SL	1	TM-Line Position X1		TMLinePositionX1
(0018,6042)	UL	1	TM-Line Position Y1 (Retired)	RET	TMLinePositionY1Retired
(0018,6043)	SL	1	TM-Line Position Y1		TMLinePositionY1
(0018,6044)	US	1	Pixel Component Organization		PixelComponentOrganization
(0018,6046)	UL	1	Pixel Component Mask		PixelComponentMask
(0018,6048)	UL	1	Pixel Component Range Start		PixelComponentRangeStart
(0018,604A)	UL	1	Pixel Component Range Stop		PixelComponentRangeStop
(0018,604C)	US	1	Pixel Component Physical Units		PixelComponentPhysicalUnits
(0018,604E)	US	1	Pixel Component Data Type		PixelComponentDataType
(0018,6050)	UL	1	Number of Table Break Points		NumberOfTableBreakPoints
(0018,6052)	UL	1-n	Table of X Break Points		TableOfXBreakPoints
(0018,6054)	FD	1-n	Table of Y Break Points		TableOfYBreakPoints
(0018,6056)	UL	1	Number of Table Entries		NumberOfTableEntries
(0018,6058)	UL	1-n	Table of Pixel Values		TableOfPixelValues
(0018,605A)	FL	1-n	Table of Parameter Values		TableOfParameterValues
(0018,6060)	FL	1-n	R Wave Time Vector		RWaveTimeVector
(0018,6070)	US	1	Active Image Area Overlay Group		ActiveImageAreaOverlayGroup
(0018,7000)	CS	1	Detector Conditions Nominal Flag		DetectorConditionsNominalFlag
(0018,7001)	DS	1	Detector Temperature		DetectorTemperature
(0018,7004)	CS	1	Detector Type		DetectorType
(0018,7005)	CS	1	Detector Configuration		DetectorConfiguration
(0018,7006)	LT	1	Detector Description		DetectorDescription
(0018,7008)	LT	1	Detector Mode		DetectorMode
(0018,700A)	SH	1	Detector ID		DetectorID
(0018,700C)	DA	1	Date of Last Detector Calibration		DateOfLastDetectorCalibration
(0018,700E)	TM	1	Time of Last Detector Calibration		TimeOfLastDetectorCalibration
(0018,7010)	IS	1	Exposures on Detector Since Last Calibration		ExposuresOnDetectorSinceLastCalibration
(0018,7011)	IS	1	Exposures on Detector Since Manufactured		ExposuresOnDetectorSinceManufactured
(0018,7012)	DS	1	Detector Time Since Last Exposure		DetectorTimeSinceLastExposure
(0018,7014)	DS	1	Detector Active Time		DetectorActiveTime
(0018,7016)	DS	1	Detector Activation Offset From Exposure		DetectorActivationOffsetFromExposure
(0018,701A)	DS	2	Detector Binning		DetectorBinning
(0018,7020)	DS	2	Detector Element Physical Size		DetectorElementPhysicalSize
(0018,7022)	DS	2	Detector Element Spacing		DetectorElementSpacing
(0018,7024)	CS	1	Detector Active Shape		DetectorActiveShape
(0018,7026)	DS	1-2	Detector Active Dimension(s)		DetectorActiveDimensions
(0018,7028)	DS	2	Detector Active Origin		DetectorActiveOrigin
(0018,702A)	LO	1	Detector Manufacturer Name		DetectorManufacturerName
(0018,702B)	LO	1	Detector Manufacturer's Model Name		DetectorManufacturerModelName
(0018,7030)	DS	2	Field of View Origin		FieldOfViewOrigin
(0018,7032)	DS	1	Field of View Rotation		FieldOfViewRotation
(0018,7034)	CS	1	Field of View Horizontal Flip		FieldOfViewHorizontalFlip
(0018,7036)	FL	2	Pixel Data Area Origin Relative To FOV		PixelDataAreaOriginRelativeToFOV
(0018,7038)	FL	1	Pixel Data Area Rotation Angle Relative To FOV		PixelDataAreaRotationAngleRelativeToFOV
(0018,7040)	LT	1	Grid Absorbing Material		GridAbsorbingMaterial
(0018,7041)	LT	1	Grid Spacing Material		GridSpacingMaterial
(0018,7042)	DS	1	Grid Thickness		GridThickness
(0018,7044)	DS	1	Grid Pitch		GridPitch
(0018,7046)	IS	2	Grid Aspect Ratio		GridAspectRatio
(0018,7048)	DS	1	Grid Period		GridPeriod
(0018,704C)	DS	1	Grid Focal Distance		GridFocalDistance
(0018,7050)	CS	1-n	Filter Material		FilterMaterial
(0018,7052)	DS	1-n	Filter Thickness Minimum		FilterThicknessMinimum
(0018,7054)	DS	1-n	Filter Thickness Maximum		FilterThicknessMaximum
(0018,7056)	FL	1-n	Filter Beam Path Length Minimum		FilterBeamPathLengthMinimum
(0018,7058)	FL	1-n	Filter Beam Path Length Maximum		FilterBeamPathLengthMaximum
(0018,7060)	CS	1	Exposure Control Mode		ExposureControlMode
(0018,7062)	LT	1	Exposure Control Mode Description		ExposureControlModeDescription
(0018,7064)	CS	1	Exposure Status		ExposureStatus
(0018,7065)	DS	1	Phototimer Setting		PhototimerSetting
(0018,8150)	DS	1	Exposure Time in µS		ExposureTimeInuS
(0018,8151)	DS	1	X-Ray Tube Current in µA		XRayTubeCurrentInuA
(0018,9004)	CS	1	Content Qualification		ContentQualification
(0018,9005)	SH	1	Pulse Sequence Name		PulseSequenceName
(0018,9006)	SQ	1	MR Imaging Modifier Sequence		MRImagingModifierSequence
(0018,9008)	CS	1	Echo Pulse Sequence		EchoPulseSequence
(0018,9009)	CS	1	Inversion Recovery		InversionRecovery
(0018,9010)	CS	1	Flow Compensation		FlowCompensation
(0018,9011)	CS	1	Multiple Spin Echo		MultipleSpinEcho
(0018,9012)	CS	1	Multi-planar Excitation		MultiPlanarExcitation
(0018,9014)	CS	1	Phase Contrast		PhaseContrast
(0018,9015)	CS	1	Time of Flight Contrast		TimeOfFlightContrast
(0018,9016)	CS	1	Spoiling		Spoiling
(0018,9017)	CS	1	Steady State Pulse Sequence		SteadyStatePulseSequence
(0018,9018)	CS	1	Echo Planar Pulse Sequence		EchoPlanarPulseSequence
(0018,9019)	FD	1	Tag Angle First Axis		TagAngleFirstAxis
(0018,9020)	CS	1	Magnetization Transfer		MagnetizationTransfer
(0018,9021)	CS	1	T2 Preparation		T2Preparation
(0018,9022)	CS	1	Blood Signal Nulling		BloodSignalNulling
(0018,9024)	CS	1	Saturation Recovery		SaturationRecovery
(0018,9025)	CS	1	Spectrally Selected Suppression		SpectrallySelectedSuppression
(0018,9026)	CS	1	Spectrally Selected Excitation		SpectrallySelectedExcitation
(0018,9027)	CS	1	Spatial Pre-saturation		SpatialPresaturation
(0018,9028)	CS	1	Tagging		Tagging
(0018,9029)	CS	1	Oversampling Phase		OversamplingPhase
(0018,9030)	FD	1	Tag Spacing First Dimension		TagSpacingFirstDimension
(0018,9032)	CS	1	Geometry of k-Space Traversal		GeometryOfKSpaceTraversal
(0018,9033)	CS	1	Segmented k-Space Traversal		SegmentedKSpaceTraversal
(0018,9034)	CS	1	Rectilinear Phase Encode Reordering		RectilinearPhaseEncodeReordering
(0018,9035)	FD	1	Tag Thickness		TagThickness
(0018,9036)	CS	1	Partial Fourier Direction		PartialFourierDirection
(0018,9037)	CS	1	Cardiac Synchronization Technique		CardiacSynchronizationTechnique
(0018,9041)	LO	1	Receive Coil Manufacturer Name		ReceiveCoilManufacturerName
(0018,9042)	SQ	1	MR Receive Coil Sequence		MRReceiveCoilSequence
(0018,9043)	CS	1	Receive Coil Type		ReceiveCoilType
(0018,9044)	CS	1	Quadrature Receive Coil		QuadratureReceiveCoil
(0018,9045)	SQ	1	Multi-Coil Definition Sequence		MultiCoilDefinitionSequence
(0018,9046)	LO	1	Multi-Coil Configuration		MultiCoilConfiguration
(0018,9047)	SH	1	Multi-Coil Element Name		MultiCoilElementName
(0018,9048)	CS	1	Multi-Coil Element Used		MultiCoilElementUsed
(0018,9049)	SQ	1	MR Transmit Coil Sequence		MRTransmitCoilSequence
(0018,9050)	LO	1	Transmit Coil Manufacturer Name		TransmitCoilManufacturerName
(0018,9051)	CS	1	Transmit Coil Type		TransmitCoilType
(0018,9052)	FD	1-2	Spectral Width		SpectralWidth
(0018,9053)	FD	1-2	Chemical Shift Reference		ChemicalShiftReference
(0018,9054)	CS	1	Volume Localization Technique		VolumeLocalizationTechnique
(0018,9058)	US	1	MR Acquisition Frequency Encoding Steps		MRAcquisitionFrequencyEncodingSteps
(0018,9059)	CS	1	De-coupling		Decoupling
(0018,9060)	CS	1-2	De-coupled Nucleus		DecoupledNucleus
(0018,9061)	FD	1-2	De-coupling Frequency		DecouplingFrequency
(0018,9062)	CS	1	De-coupling Method		DecouplingMethod
(0018,9063)	FD	1-2	De-coupling Chemical Shift Reference		DecouplingChemicalShiftReference
(0018,9064)	CS	1	k-space Filtering		KSpaceFiltering
(0018,9065)	CS	1-2	Time Domain Filtering		TimeDomainFiltering
(0018,9066)	US	1-2	Number of Zero Fills		NumberOfZeroFills
(0018,9067)	CS	1	Baseline Correction		BaselineCorrection
(0018,9069)	FD	1	Parallel Reduction Factor In-plane		ParallelReductionFactorInPlane
(0018,9070)	FD	1	Cardiac R-R Interval Specified		CardiacRRIntervalSpecified
(0018,9073)	FD	1	Acquisition Duration		AcquisitionDuration
(0018,9074)	DT	1	Frame Acquisition DateTime		FrameAcquisitionDateTime
(0018,9075)	CS	1	Diffusion Directionality		DiffusionDirectionality
(0018,9076)	SQ	1	Diffusion Gradient Direction Sequence		DiffusionGradientDirectionSequence
(0018,9077)	CS	1	Parallel Acquisition		ParallelAcquisition
(0018,9078)	CS	1	Parallel Acquisition Technique		ParallelAcquisitionTechnique
(0018,9079)	FD	1-n	Inversion Times		InversionTimes
(0018,9080)	ST	1	Metabolite Map Description		MetaboliteMapDescription
(0018,9081)	CS	1	Partial Fourier		PartialFourier
(0018,9082)	FD	1	Effective Echo Time		EffectiveEchoTime
(0018,9083)	SQ	1	Metabolite Map Code Sequence		MetaboliteMapCodeSequence
(0018,9084)	SQ	1	Chemical Shift Sequence		ChemicalShiftSequence
(0018,9085)	CS	1	Cardiac Signal Source		CardiacSignalSource
(0018,9087)	FD	1	Diffusion b-value		DiffusionBValue
(0018,9089)	FD	3	Diffusion Gradient Orientation		DiffusionGradientOrientation
(0018,9090)	FD	3	Velocity Encoding Direction		VelocityEncodingDirection
(0018,9091)	FD	1	Velocity Encoding Minimum Value		VelocityEncodingMinimumValue
(0018,9092)	SQ	1	Velocity Encoding Acquisition Sequence		VelocityEncodingAcquisitionSequence
(0018,9093)	US	1	Number of k-Space Trajectories		NumberOfKSpaceTrajectories
(0018,9094)	CS	1	Coverage of k-Space		CoverageOfKSpace
(0018,9095)	UL	1	Spectroscopy Acquisition Phase Rows		SpectroscopyAcquisitionPhaseRows
(0018,9096)	FD	1	Parallel Reduction Factor In-plane (Retired)	RET	ParallelReductionFactorInPlaneRetired
(0018,9098)	FD	1-2	Transmitter Frequency		TransmitterFrequency
(0018,9100)	CS	1-2	Resonant Nucleus		ResonantNucleus
(0018,9101)	CS	1	Frequency Correction		FrequencyCorrection
(0018,9103)	SQ	1	MR Spectroscopy FOV/Geometry Sequence		MRSpectroscopyFOVGeometrySequence
(0018,9104)	FD	1	Slab Thickness		SlabThickness
(0018,9105)	FD	3	Slab Orientation		SlabOrientation
(0018,9106)	FD	3	Mid Slab Position		MidSlabPosition
(0018,9107)	SQ	1	MR Spatial Saturation Sequence		MRSpatialSaturationSequence
(0018,9112)	SQ	1	MR Timing and Related Parameters Sequence		MRTimingAndRelatedParametersSequence
(0018,9114)	SQ	1	MR Echo Sequence		MREchoSequence
(0018,9115)	SQ	1	MR Modifier Sequence		MRModifierSequence
(0018,9117)	SQ	1	MR Diffusion Sequence		MRDiffusionSequence
(0018,9118)	SQ	1	Cardiac Synchronization Sequence		CardiacSynchronizationSequence
(0018,9119)	SQ	1	MR Averages Sequence		MRAveragesSequence
(0018,9125)	SQ	1	MR FOV/Geometry Sequence		MRFOVGeometrySequence
(0018,9126)	SQ	1	Volume Localization Sequence		VolumeLocalizationSequence
(0018,9127)	UL	1	Spectroscopy Acquisition Data Columns		SpectroscopyAcquisitionDataColumns
(0018,9147)	CS	1	Diffusion Anisotropy Type		DiffusionAnisotropyType
(0018,9151)	DT	1	Frame Reference DateTime		FrameReferenceDateTime
(0018,9152)	SQ	1	MR Metabolite Map Sequence		MRMetaboliteMapSequence
(0018,9155)	FD	1	Parallel Reduction Factor out-of-plane		ParallelReductionFactorOutOfPlane
(0018,9159)	UL	1	Spectroscopy Acquisition Out-of-plane Phase Steps		SpectroscopyAcquisitionOutOfPlanePhaseSteps
(0018,9166)	CS	1	Bulk Motion Status	RET	BulkMotionStatus
(0018,9168)	FD	1	Parallel Reduction Factor Second In-plane		ParallelReductionFactorSecondInPlane
(0018,9169)	CS	1	Cardiac Beat Rejection Technique		CardiacBeatRejectionTechnique
(0018,9170)	CS	1	Respiratory Motion Compensation Technique		RespiratoryMotionCompensationTechnique
(0018,9171)	CS	1	Respiratory Signal Source		RespiratorySignalSource
(0018,9172)	CS	1	Bulk Motion Compensation Technique		BulkMotionCompensationTechnique
(0018,9173)	CS	1	Bulk Motion Signal Source		BulkMotionSignalSource
(0018,9174)	CS	1	Applicable Safety Standard Agency		ApplicableSafetyStandardAgency
(0018,9175)	LO	1	Applicable Safety Standard Description		ApplicableSafetyStandardDescription
(0018,9176)	SQ	1	Operating Mode Sequence		OperatingModeSequence
(0018,9177)	CS	1	Operating Mode Type		OperatingModeType
(0018,9178)	CS	1	Operating Mode		OperatingMode
(0018,9179)	CS	1	Specific Absorption Rate Definition		SpecificAbsorptionRateDefinition
(0018,9180)	CS	1	Gradient Output Type		GradientOutputType
(0018,9181)	FD	1	Specific Absorption Rate Value		SpecificAbsorptionRateValue
(0018,9182)	FD	1	Gradient Output		GradientOutput
(0018,9183)	CS	1	Flow Compensation Direction		FlowCompensationDirection
(0018,9184)	FD	1	Tagging Delay		TaggingDelay
(0018,9185)	ST	1	Respiratory Motion Compensation Technique Description		RespiratoryMotionCompensationTechniqueDescription
(0018,9186)	SH	1	Respiratory Signal Source ID		RespiratorySignalSourceID
(0018,9195)	FD	1	Chemical Shift Minimum Integration Limit in Hz	RET	ChemicalShiftMinimumIntegrationLimitInHz
(0018,9196)	FD	1	Chemical Shift Maximum Integration Limit in Hz	RET	ChemicalShiftMaximumIntegrationLimitInHz
(0018,9197)	SQ	1	MR Velocity Encoding Sequence		MRVelocityEncodingSequence
(0018,9198)	CS	1	First Order Phase Correction		FirstOrderPhaseCorrection
(0018,9199)	CS	1	Water Referenced Phase Correction		WaterReferencedPhaseCorrection
(0018,9200)	CS	1	MR Spectroscopy Acquisition Type		MRSpectroscopyAcquisitionType
(0018,9214)	CS	1	Respiratory Cycle Position		RespiratoryCyclePosition
(0018,9217)	FD	1	Velocity Encoding Maximum Value		VelocityEncodingMaximumValue
(0018,9218)	FD	1	Tag Spacing Second Dimension		TagSpacingSecondDimension
(0018,9219)	SS	1	Tag Angle Second Axis		TagAngleSecondAxis
(0018,9220)	FD	1	Frame Acquisition Duration		FrameAcquisitionDuration
(0018,9226)	SQ	1	MR Image Frame Type Sequence		MRImageFrameTypeSequence
(0018,9227)	SQ	1	MR Spectroscopy Frame Type Sequence		MRSpectroscopyFrameTypeSequence
(0018,9231)	US	1	MR Acquisition Phase Encoding Steps in-plane		MRAcquisitionPhaseEncodingStepsInPlane
(0018,9232)	US	1	MR Acquisition Phase Encoding Steps out-of-plane		MRAcquisitionPhaseEncodingStepsOutOfPlane
(0018,9234)	UL	1	Spectroscopy Acquisition Phase Columns		SpectroscopyAcquisitionPhaseColumns
(0018,9236)	CS	1	Cardiac Cycle Position		CardiacCyclePosition
(0018,9239)	SQ	1	Specific Absorption Rate Sequence		SpecificAbsorptionRateSequence
(0018,9240)	US	1	RF Echo Train Length		RFEchoTrainLength
(0018,9241)	US	1	Gradient Echo Train Length		GradientEchoTrainLength
(0018,9250)	CS	1	Arterial Spin Labeling Contrast		ArterialSpinLabelingContrast
(0018,9251)	SQ	1	MR Arterial Spin Labeling Sequence		MRArterialSpinLabelingSequence
(0018,9252)	LO	1	ASL Technique Description		ASLTechniqueDescription
(0018,9253)	US	1	ASL Slab Number		ASLSlabNumber
(0018,9254)	FD	1	ASL Slab Thickness		ASLSlabThickness
(0018,9255)	FD	3	ASL Slab Orientation		ASLSlabOrientation
(0018,9256)	FD	3	ASL Mid Slab Position		ASLMidSlabPosition
(0018,9257)	CS	1	ASL Context		ASLContext
(0018,9258)	UL	1	ASL Pulse Train Duration		ASLPulseTrainDuration
(0018,9259)	CS	1	ASL Crusher Flag		ASLCrusherFlag
(0018,925A)	FD	1	ASL Crusher Flow Limit		ASLCrusherFlowLimit
(0018,925B)	LO	1	ASL Crusher Description		ASLCrusherDescription
(0018,925C)	CS	1	ASL Bolus Cut-off Flag		ASLBolusCutoffFlag
(0018,925D)	SQ	1	ASL Bolus Cut-off Timing Sequence		ASLBolusCutoffTimingSequence
(0018,925E)	LO	1	ASL Bolus Cut-off Technique		ASLBolusCutoffTechnique
(0018,925F)	UL	1	ASL Bolus Cut-off Delay Time		ASLBolusCutoffDelayTime
(0018,9260)	SQ	1	ASL Slab Sequence		ASLSlabSequence
(0018,9295)	FD	1	Chemical Shift Minimum Integration Limit in ppm		ChemicalShiftMinimumIntegrationLimitInppm
(0018,9296)	FD	1	Chemical Shift Maximum Integration Limit in ppm		ChemicalShiftMaximumIntegrationLimitInppm
(0018,9297)	CS	1	Water Reference Acquisition		WaterReferenceAcquisition
(0018,9298)	IS	1	Echo Peak Position		EchoPeakPosition
(0018,9301)	SQ	1	CT Acquisition Type Sequence		CTAcquisitionTypeSequence
(0018,9302)	CS	1	Acquisition Type		AcquisitionType
(0018,9303)	FD	1	Tube Angle		TubeAngle
(0018,9304)	SQ	1	CT Acquisition Details Sequence		CTAcquisitionDetailsSequence
(0018,9305)	FD	1	Revolution Time		RevolutionTime
(0018,9306)	FD	1	Single Collimation Width		SingleCollimationWidth
(0018,9307)	FD	1	Total Collimation Width		TotalCollimationWidth
(0018,9308)	SQ	1	CT Table Dynamics Sequence		CTTableDynamicsSequence
(0018,9309)	FD	1	Table Speed		TableSpeed
(0018,9310)	FD	1	Table Feed per Rotation		TableFeedPerRotation
(0018,9311)	FD	1	Spiral Pitch Factor		SpiralPitchFactor
(0018,9312)	SQ	1	CT Geometry Sequence		CTGeometrySequence
(0018,9313)	FD	3	Data Collection Center (Patient)		DataCollectionCenterPatient
(0018,9314)	SQ	1	CT Reconstruction Sequence		CTReconstructionSequence
(0018,9315)	CS	1	Reconstruction Algorithm		ReconstructionAlgorithm
(0018,9316)	CS	1	Convolution Kernel Group		ConvolutionKernelGroup
(0018,9317)	FD	2	Reconstruction Field of View		ReconstructionFieldOfView
(0018,9318)	FD	3	Reconstruction Target Center (Patient)		ReconstructionTargetCenterPatient
(0018,9319)	FD	1	Reconstruction Angle		ReconstructionAngle
(0018,9320)	SH	1	Image Filter		ImageFilter
(0018,9321)	SQ	1	CT Exposure Sequence		CTExposureSequence
(0018,9322)	FD	2	Reconstruction Pixel Spacing		ReconstructionPixelSpacing
(0018,9323)	CS	1-n	Exposure Modulation Type		ExposureModulationType
(0018,9324)	FD	1	Estimated Dose Saving	RET	EstimatedDoseSaving
(0018,9325)	SQ	1	CT X-Ray Details Sequence		CTXRayDetailsSequence
(0018,9326)	SQ	1	CT Position Sequence		CTPositionSequence
(0018,9327)	FD	1	Table Position		TablePosition
(0018,9328)	FD	1	Exposure Time in ms		ExposureTimeInms
(0018,9329)	SQ	1	CT Image Frame Type Sequence		CTImageFrameTypeSequence
(0018,9330)	FD	1	X-Ray Tube Current in mA		XRayTubeCurrentInmA
(0018,9332)	FD	1	Exposure in mAs		ExposureInmAs
(0018,9333)	CS	1	Constant Volume Flag		ConstantVolumeFlag
(0018,9334)	CS	1	Fluoroscopy Flag		FluoroscopyFlag
(0018,9335)	FD	1	Distance Source to Data Collection Center		DistanceSourceToDataCollectionCenter
(0018,9337)	US	1	Contrast/Bolus Agent Number		ContrastBolusAgentNumber
(0018,9338)	SQ	1	Contrast/Bolus Ingredient Code Sequence		ContrastBolusIngredientCodeSequence
(0018,9340)	SQ	1	Contrast Administration Profile Sequence		ContrastAdministrationProfileSequence
(0018,9341)	SQ	1	Contrast/Bolus Usage Sequence		ContrastBolusUsageSequence
(0018,9342)	CS	1	Contrast/Bolus Agent Administered		ContrastBolusAgentAdministered
(0018,9343)	CS	1	Contrast/Bolus Agent Detected		ContrastBolusAgentDetected
(0018,9344)	CS	1	Contrast/Bolus Agent Phase		ContrastBolusAgentPhase
(0018,9345)	FD	1	CTDIvol		CTDIvol
(0018,9346)	SQ	1	CTDI Phantom Type Code Sequence		CTDIPhantomTypeCodeSequence
(0018,9351)	FL	1	Calcium Scoring Mass Factor Patient		CalciumScoringMassFactorPatient
(0018,9352)	FL	3	Calcium Scoring Mass Factor Device		CalciumScoringMassFactorDevice
(0018,9353)	FL	1	Energy Weighting Factor		EnergyWeightingFactor
(0018,9360)	SQ	1	CT Additional X-Ray Source Sequence		CTAdditionalXRaySourceSequence
(0018,9361)	CS	1	Multi-energy CT Acquisition		MultienergyCTAcquisition
(0018,9362)	SQ	1	Multi-energy CT Acquisition Sequence		MultienergyCTAcquisitionSequence
(0018,9363)	SQ	1	Multi-energy CT Processing Sequence		MultienergyCTProcessingSequence
(0018,9364)	SQ	1	Multi-energy CT Characteristics Sequence		MultienergyCTCharacteristicsSequence
(0018,9365)	SQ	1	Multi-energy CT X-Ray Source Sequence		MultienergyCTXRaySourceSequence
(0018,9366)	US	1	X-Ray Source Index		XRaySourceIndex
(0018,9367)	UC	1	X-Ray Source ID		XRaySourceID
(0018,9368)	CS	1	Multi-energy Source Technique		MultienergySourceTechnique
(0018,9369)	DT	1	Source Start DateTime		SourceStartDateTime
(0018,936A)	DT	1	Source End DateTime		SourceEndDateTime
(0018,936B)	US	1	Switching Phase Number		SwitchingPhaseNumber
(0018,936C)	DS	1	Switching Phase Nominal Duration		SwitchingPhaseNominalDuration
(0018,936D)	DS	1	Switching Phase Transition Duration		SwitchingPhaseTransitionDuration
(0018,936E)	DS	1	Effective Bin Energy		EffectiveBinEnergy
(0018,936F)	SQ	1	Multi-energy CT X-Ray Detector Sequence		MultienergyCTXRayDetectorSequence
(0018,9370)	US	1	X-Ray Detector Index		XRayDetectorIndex
(0018,9371)	UC	1	X-Ray Detector ID		XRayDetectorID
(0018,9372)	CS	1	Multi-energy Detector Type		MultienergyDetectorType
(0018,9373)	ST	1	X-Ray Detector Label		XRayDetectorLabel
(0018,9374)	DS	1	Nominal Max Energy		NominalMaxEnergy
(0018,9375)	DS	1	Nominal Min Energy		NominalMinEnergy
(0018,9376)	US	1-n	Referenced X-Ray Detector Index		ReferencedXRayDetectorIndex
(0018,9377)	US	1-n	Referenced X-Ray Source Index		ReferencedXRaySourceIndex
(0018,9378)	US	1-n	Referenced Path Index		ReferencedPathIndex
(0018,9379)	SQ	1	Multi-energy CT Path Sequence		MultienergyCTPathSequence
(0018,937A)	US	1	Multi-energy CT Path Index		MultienergyCTPathIndex
(0018,937B)	UT	1	Multi-energy Acquisition Description		MultienergyAcquisitionDescription
(0018,937C)	FD	1	Monoenergetic Energy Equivalent		MonoenergeticEnergyEquivalent
(0018,937D)	SQ	1	Material Code Sequence		MaterialCodeSequence
(0018,937E)	CS	1	Decomposition Method		DecompositionMethod
(0018,937F)	UT	1	Decomposition Description		DecompositionDescription
(0018,9380)	SQ	1	Decomposition Algorithm Identification Sequence		DecompositionAlgorithmIdentificationSequence
(0018,9381)	SQ	1	Decomposition Material Sequence		DecompositionMaterialSequence
(0018,9382)	SQ	1	Material Attenuation Sequence		MaterialAttenuationSequence
(0018,9383)	DS	1	Photon Energy		PhotonEnergy
(0018,9384)	DS	1	X-Ray Mass Attenuation Coefficient		XRayMassAttenuationCoefficient
(0018,9401)	SQ	1	Projection Pixel Calibration Sequence		ProjectionPixelCalibrationSequence
(0018,9402)	FL	1	Distance Source to Isocenter		DistanceSourceToIsocenter
(0018,9403)	FL	1	Distance Object to Table Top		DistanceObjectToTableTop
(0018,9404)	FL	2	Object Pixel Spacing in Center of Beam		ObjectPixelSpacingInCenterOfBeam
(0018,9405)	SQ	1	Positioner Position Sequence		PositionerPositionSequence
(0018,9406)	SQ	1	Table Position Sequence		TablePositionSequence
(0018,9407)	SQ	1	Collimator Shape Sequence		CollimatorShapeSequence
(0018,9410)	CS	1	Planes in Acquisition		PlanesInAcquisition
(0018,9412)	SQ	1	XA/XRF Frame Characteristics Sequence		XAXRFFrameCharacteristicsSequence
(0018,9417)	SQ	1	Frame Acquisition Sequence		FrameAcquisitionSequence
(0018,9420)	CS	1	X-Ray Receptor Type		XRayReceptorType
(0018,9423)	LO	1	Acquisition Protocol Name		AcquisitionProtocolName
(0018,9424)	LT	1	Acquisition Protocol Description		AcquisitionProtocolDescription
(0018,9425)	CS	1	Contrast/Bolus Ingredient Opaque		ContrastBolusIngredientOpaque
(0018,9426)	FL	1	Distance Receptor Plane to Detector Housing		DistanceReceptorPlaneToDetectorHousing
(0018,9427)	CS	1	Intensifier Active Shape		IntensifierActiveShape
(0018,9428)	FL	1-2	Intensifier Active Dimension(s)		IntensifierActiveDimensions
(0018,9429)	FL	2	Physical Detector Size		PhysicalDetectorSize
(0018,9430)	FL	2	Position of Isocenter Projection		PositionOfIsocenterProjection
(0018,9432)	SQ	1	Field of View Sequence		FieldOfViewSequence
(0018,9433)	LO	1	Field of View Description		FieldOfViewDescription
(0018,9434)	SQ	1	Exposure Control Sensing Regions Sequence		ExposureControlSensingRegionsSequence
(0018,9435)	CS	1	Exposure Control Sensing Region Shape		ExposureControlSensingRegionShape
(0018,9436)	SS	1	Exposure Control Sensing Region Left Vertical Edge		ExposureControlSensingRegionLeftVerticalEdge
(0018,9437)	SS	1	Exposure Control Sensing Region Right Vertical Edge		ExposureControlSensingRegionRightVerticalEdge
(0018,9438)	SS	1	Exposure Control Sensing Region Upper Horizontal Edge		ExposureControlSensingRegionUpperHorizontalEdge
(0018,9439)	SS	1	Exposure Control Sensing Region Lower Horizontal Edge		ExposureControlSensingRegionLowerHorizontalEdge
(0018,9440)	SS	2	Center of Circular Exposure Control Sensing Region		CenterOfCircularExposureControlSensingRegion
(0018,9441)	US	1	Radius of Circular Exposure Control Sensing Region		RadiusOfCircularExposureControlSensingRegion
(0018,9442)	SS	2-n	Vertices of the Polygonal Exposure Control Sensing Region		VerticesOfThePolygonalExposureControlSensingRegion
(0018,9447)	FL	1	Column Angulation (Patient)		ColumnAngulationPatient
(0018,9449)	FL	1	Beam Angle		BeamAngle
(0018,9451)	SQ	1	Frame Detector Parameters Sequence		FrameDetectorParametersSequence
(0018,9452)	FL	1	Calculated Anatomy Thickness		CalculatedAnatomyThickness
(0018,9455)	SQ	1	Calibration Sequence		CalibrationSequence
(0018,9456)	SQ	1	Object Thickness Sequence		ObjectThicknessSequence
(0018,9457)	CS	1	Plane Identification		PlaneIdentification
(0018,9461)	FL	1-2	Field of View Dimension(s) in Float		FieldOfViewDimensionsInFloat
(0018,9462)	SQ	1	Isocenter Reference System Sequence		IsocenterReferenceSystemSequence
(0018,9463)	FL	1	Positioner Isocenter Primary Angle		PositionerIsocenterPrimaryAngle
(0018,9464)	FL	1	Positioner Isocenter Secondary Angle		PositionerIsocenterSecondaryAngle
(0018,9465)	FL	1	Positioner Isocenter Detector Rotation Angle		PositionerIsocenterDetectorRotationAngle
(0018,9466)	FL	1	Table X Position to Isocenter		TableXPositionToIsocenter
(0018,9467)	FL	1	Table Y Position to Isocenter		TableYPositionToIsocenter
(0018,9468)	FL	1	Table Z Position to Isocenter		TableZPositionToIsocenter
(0018,9469)	FL	1	Table Horizontal Rotation Angle		TableHorizontalRotationAngle
(0018,9470)	FL	1	Table Head Tilt Angle		TableHeadTiltAngle
(0018,9471)	FL	1	Table Cradle Tilt Angle		TableCradleTiltAngle
(0018,9472)	SQ	1	Frame Display Shutter Sequence		FrameDisplayShutterSequence
(0018,9473)	FL	1	Acquired Image Area Dose Product		AcquiredImageAreaDoseProduct
(0018,9474)	CS	1	C-arm Positioner Tabletop Relationship		CArmPositionerTabletopRelationship
(0018,9476)	SQ	1	X-Ray Geometry Sequence		XRayGeometrySequence
(0018,9477)	SQ	1	Irradiation Event Identification Sequence		IrradiationEventIdentificationSequence
(0018,9504)	SQ	1	X-Ray 3D Frame Type Sequence		XRay3DFrameTypeSequence
(0018,9506)	SQ	1	Contributing Sources Sequence		ContributingSourcesSequence
(0018,9507)	SQ	1	X-Ray 3D Acquisition Sequence		XRay3DAcquisitionSequence
(0018,9508)	FL	1	Primary Positioner Scan Arc		PrimaryPositionerScanArc
(0018,9509)	FL	1	Secondary Positioner Scan Arc		SecondaryPositionerScanArc
(0018,9510)	FL	1	Primary Positioner Scan Start Angle		PrimaryPositionerScanStartAngle
(0018,9511)	FL	1	Secondary Positioner Scan Start Angle		SecondaryPositionerScanStartAngle
(0018,9514)	FL	1	Primary Positioner Increment		PrimaryPositionerIncrement
(0018,9515)	FL	1	Secondary Positioner Increment		SecondaryPositionerIncrement
(0018,9516)	DT	1	Start Acquisition DateTime		StartAcquisitionDateTime
(0018,9517)	DT	1	End Acquisition DateTime		EndAcquisitionDateTime
(0018,9518)	SS	1	Primary Positioner Increment Sign		PrimaryPositionerIncrementSign
(0018,9519)	SS	1	Secondary Positioner Increment Sign		SecondaryPositionerIncrementSign
(0018,9524)	LO	1	Application Name		ApplicationName
(0018,9525)	LO	1	Application Version		ApplicationVersion
(0018,9526)	LO	1	Application Manufacturer		ApplicationManufacturer
(0018,9527)	CS	1	Algorithm Type		AlgorithmType
(0018,9528)	LO	1	Algorithm Description		AlgorithmDescription
(0018,9530)	SQ	1	X-Ray 3D Reconstruction Sequence		XRay3DReconstructionSequence
(0018,9531)	LO	1	Reconstruction Description		ReconstructionDescription
(0018,9538)	SQ	1	Per Projection Acquisition Sequence		PerProjectionAcquisitionSequence
(0018,9541)	SQ	1	Detector Position Sequence		DetectorPositionSequence
(0018,9542)	SQ	1	X-Ray Acquisition Dose Sequence		XRayAcquisitionDoseSequence
(0018,9543)	FD	1	X-Ray Source Isocenter Primary Angle		XRaySourceIsocenterPrimaryAngle
(0018,9544)	FD	1	X-Ray Source Isocenter Secondary Angle		XRaySourceIsocenterSecondaryAngle
(0018,9545)	FD	1	Breast Support Isocenter Primary Angle		BreastSupportIsocenterPrimaryAngle
(0018,9546)	FD	1	Breast Support Isocenter Secondary Angle		BreastSupportIsocenterSecondaryAngle
(0018,9547)	FD	1	Breast Support X Position to Isocenter		BreastSupportXPositionToIsocenter
(0018,9548)	FD	1	Breast Support Y Position to Isocenter		BreastSupportYPositionToIsocenter
(0018,9549)	FD	1	Breast Support Z Position to Isocenter		BreastSupportZPositionToIsocenter
(0018,9550)	FD	1	Detector Isocenter Primary Angle		DetectorIsocenterPrimaryAngle
(0018,9551)	FD	1	Detector Isocenter Secondary Angle		DetectorIsocenterSecondaryAngle
(0018,9552)	FD	1	Detector X Position to Isocenter		DetectorXPositionToIsocenter
(0018,9553)	FD	1	Detector Y Position to Isocenter		DetectorYPositionToIsocenter
(0018,9554)	FD	1	Detector Z Position to Isocenter		DetectorZPositionToIsocenter
(0018,9555)	SQ	1	X-Ray Grid Sequence		XRayGridSequence
(0018,9556)	SQ	1	X-Ray Filter Sequence		XRayFilterSequence
(0018,9557)	FD	3	Detector Active Area TLHC Position		DetectorActiveAreaTLHCPosition
(0018,9558)	FD	6	Detector Active Area Orientation		DetectorActiveAreaOrientation
(0018,9559)	CS	1	Positioner Primary Angle Direction		PositionerPrimaryAngleDirection
(0018,9601)	SQ	1	Diffusion b-matrix Sequence		DiffusionBMatrixSequence
(0018,9602)	FD	1	Diffusion b-value XX		DiffusionBValueXX
(0018,9603)	FD	1	Diffusion b-value XY		DiffusionBValueXY
(0018,9604)	FD	1	Diffusion b-value XZ		DiffusionBValueXZ
(0018,9605)	FD	1	Diffusion b-value YY		DiffusionBValueYY
(0018,9606)	FD	1	Diffusion b-value YZ		DiffusionBValueYZ
(0018,9607)	FD	1	Diffusion b-value ZZ		DiffusionBValueZZ
(0018,9621)	SQ	1	Functional MR Sequence		FunctionalMRSequence
(0018,9622)	CS	1	Functional Settling Phase Frames Present		FunctionalSettlingPhaseFramesPresent
(0018,9623)	DT	1	Functional Sync Pulse		FunctionalSyncPulse
(0018,9624)	CS	1	Settling Phase Frame		SettlingPhaseFrame
(0018,9701)	DT	1	Decay Correction DateTime		DecayCorrectionDateTime
(0018,9715)	FD	1	Start Density Threshold		StartDensityThreshold
(0018,9716)	FD	1	Start Relative Density Difference Threshold		StartRelativeDensityDifferenceThreshold
(0018,9717)	FD	1	Start Cardiac Trigger Count Threshold		StartCardiacTriggerCountThreshold
(0018,9718)	FD	1	Start Respiratory Trigger Count Threshold		StartRespiratoryTriggerCountThreshold
(0018,9719)	FD	1	Termination Counts Threshold		TerminationCountsThreshold
(0018,9720)	FD	1	Termination Density Threshold		TerminationDensityThreshold
(0018,9721)	FD	1	Termination Relative Density Threshold		TerminationRelativeDensityThreshold
(0018,9722)	FD	1	Termination Time Threshold		TerminationTimeThreshold
(0018,9723)	FD	1	Termination Cardiac Trigger Count Threshold		TerminationCardiacTriggerCountThreshold
(0018,9724)	FD	1	Termination Respiratory Trigger Count Threshold		TerminationRespiratoryTriggerCountThreshold
(0018,9725)	CS	1	Detector Geometry		DetectorGeometry
(0018,9726)	FD	1	Transverse Detector Separation		TransverseDetectorSeparation
(0018,9727)	FD	1	Axial Detector Dimension		AxialDetectorDimension
(0018,9729)	US	1	Radiopharmaceutical Agent Number		RadiopharmaceuticalAgentNumber
(0018,9732)	SQ	1	PET Frame Acquisition Sequence		PETFrameAcquisitionSequence
(0018,9733)	SQ	1	PET Detector Motion Details Sequence		PETDetectorMotionDetailsSequence
(0018,9734)	SQ	1	PET Table Dynamics Sequence		PETTableDynamicsSequence
(0018,9735)	SQ	1	PET Position Sequence		PETPositionSequence
(0018,9736)	SQ	1	PET Frame Correction Factors Sequence		PETFrameCorrectionFactorsSequence
(0018,9737)	SQ	1	Radiopharmaceutical Usage Sequence		RadiopharmaceuticalUsageSequence
(0018,9738)	CS	1	Attenuation Correction Source		AttenuationCorrectionSource
(0018,9739)	US	1	Number of Iterations		NumberOfIterations
(0018,9740)	US	1	Number of Subsets		NumberOfSubsets
(0018,9749)	SQ	1	PET Reconstruction Sequence		PETReconstructionSequence
(0018,9751)	SQ	1	PET Frame Type Sequence		PETFrameTypeSequence
(0018,9755)	CS	1	Time of Flight Information Used		TimeOfFlightInformationUsed
(0018,9756)	CS	1	Reconstruction Type		ReconstructionType
(0018,9758)	CS	1	Decay Corrected		DecayCorrected
(0018,9759)	CS	1	Attenuation Corrected		AttenuationCorrected
(0018,9760)	CS	1	Scatter Corrected		ScatterCorrected
(0018,9761)	CS	1	Dead Time Corrected		DeadTimeCorrected
(0018,9762)	CS	1	Gantry Motion Corrected		GantryMotionCorrected
(0018,9763)	CS	1	Patient Motion Corrected		PatientMotionCorrected
(0018,9764)	CS	1	Count Loss Normalization Corrected		CountLossNormalizationCorrected
(0018,9765)	CS	1	Randoms Corrected		RandomsCorrected
(0018,9766)	CS	1	Non-uniform Radial Sampling Corrected		NonUniformRadialSamplingCorrected
(0018,9767)	CS	1	Sensitivity Calibrated		SensitivityCalibrated
(0018,9768)	CS	1	Detector Normalization Correction		DetectorNormalizationCorrection
(0018,9769)	CS	1	Iterative Reconstruction Method		IterativeReconstructionMethod
(0018,9770)	CS	1	Attenuation Correction Temporal Relationship		AttenuationCorrectionTemporalRelationship
(0018,9771)	SQ	1	Patient Physiological State Sequence		PatientPhysiologicalStateSequence
(0018,9772)	SQ	1	Patient Physiological State Code Sequence		PatientPhysiologicalStateCodeSequence
(0018,9801)	FD	1-n	Depth(s) of Focus		DepthsOfFocus
(0018,9803)	SQ	1	Excluded Intervals Sequence		ExcludedIntervalsSequence
(0018,9804)	DT	1	Exclusion Start DateTime		ExclusionStartDateTime
(0018,9805)	FD	1	Exclusion Duration		ExclusionDuration
(0018,9806)	SQ	1	US Image Description Sequence		USImageDescriptionSequence
(0018,9807)	SQ	1	Image Data Type Sequence		ImageDataTypeSequence
(0018,9808)	CS	1	Data Type		DataType
(0018,9809)	SQ	1	Transducer Scan Pattern Code Sequence		TransducerScanPatternCodeSequence
(0018,980B)	CS	1	Aliased Data Type		AliasedDataType
(0018,980C)	CS	1	Position Measuring Device Used		PositionMeasuringDeviceUsed
(0018,980D)	SQ	1	Transducer Geometry Code Sequence		TransducerGeometryCodeSequence
(0018,980E)	SQ	1	Transducer Beam Steering Code Sequence		TransducerBeamSteeringCodeSequence
(0018,980F)	SQ	1	Transducer Application Code Sequence		TransducerApplicationCodeSequence
(0018,9810)	US or SS	1	Zero Velocity Pixel Value		ZeroVelocityPixelValue
(0018,9821)	SQ	1	Photoacoustic Excitation Characteristics Sequence		PhotoacousticExcitationCharacteristicsSequence
(0018,9822)	FD	1	Excitation Spectral Width		ExcitationSpectralWidth
(0018,9823)	FD	1	Excitation Energy		ExcitationEnergy
(0018,9824)	FD	1	Excitation Pulse Duration		ExcitationPulseDuration
(0018,9825)	SQ	1	Excitation Wavelength Sequence		ExcitationWavelengthSequence
(0018,9826)	FD	1	Excitation Wavelength		ExcitationWavelength
(0018,9828)	CS	1	Illumination Translation Flag		IlluminationTranslationFlag
(0018,9829)	CS	1	Acoustic Coupling Medium Flag		AcousticCouplingMediumFlag
(0018,982A)	SQ	1	Acoustic Coupling Medium Code Sequence		AcousticCouplingMediumCodeSequence
(0018,982B)	FD	1	Acoustic Coupling Medium Temperature		AcousticCouplingMediumTemperature
(0018,982C)	SQ	1	Transducer Response Sequence		TransducerResponseSequence
(0018,982D)	FD	1	Center Frequency		CenterFrequency
(0018,982E)	FD	1	Fractional Bandwidth		FractionalBandwidth
(0018,982F)	FD	1	Lower Cutoff Frequency		LowerCutoffFrequency
(0018,9830)	FD	1	Upper Cutoff Frequency		UpperCutoffFrequency
(0018,9831)	SQ	1	Transducer Technology Sequence		TransducerTechnologySequence
(0018,9832)	SQ	1	Sound Speed Correction Mechanism Code Sequence		SoundSpeedCorrectionMechanismCodeSequence
(0018,9833)	FD	1	Object Sound Speed		ObjectSoundSpeed
(0018,9834)	FD	1	Acoustic Coupling Medium Sound Speed		AcousticCouplingMediumSoundSpeed
(0018,9835)	SQ	1	Photoacoustic Image Frame Type Sequence		PhotoacousticImageFrameTypeSequence
(0018,9836)	SQ	1	Image Data Type Code Sequence		ImageDataTypeCodeSequence
(0018,9900)	LO	1	Reference Location Label		ReferenceLocationLabel
(0018,9901)	UT	1	Reference Location Description		ReferenceLocationDescription
(0018,9902)	SQ	1	Reference Basis Code Sequence		ReferenceBasisCodeSequence
(0018,9903)	SQ	1	Reference Geometry Code Sequence		ReferenceGeometryCodeSequence
(0018,9904)	DS	1	Offset Distance		OffsetDistance
(0018,9905)	CS	1	Offset Direction		OffsetDirection
(0018,9906)	SQ	1	Potential Scheduled Protocol Code Sequence		PotentialScheduledProtocolCodeSequence
(0018,9907)	SQ	1	Potential Requested Procedure Code Sequence		PotentialRequestedProcedureCodeSequence
(0018,9908)	UC	1-n	Potential Reasons for Procedure		PotentialReasonsForProcedure
(0018,9909)	SQ	1	Potential Reasons for Procedure Code Sequence		PotentialReasonsForProcedureCodeSequence
(0018,990A)	UC	1-n	Potential Diagnostic Tasks		PotentialDiagnosticTasks
(0018,990B)	SQ	1	Contraindications Code Sequence		ContraindicationsCodeSequence
(0018,990C)	SQ	1	Referenced Defined Protocol Sequence		ReferencedDefinedProtocolSequence
(0018,990D)	SQ	1	Referenced Performed Protocol Sequence		ReferencedPerformedProtocolSequence
(0018,990E)	SQ	1	Predecessor Protocol Sequence		PredecessorProtocolSequence
(0018,990F)	UT	1	Protocol Planning Information		ProtocolPlanningInformation
(0018,9910)	UT	1	Protocol Design Rationale		ProtocolDesignRationale
(0018,9911)	SQ	1	Patient Specification Sequence		PatientSpecificationSequence
(0018,9912)	SQ	1	Model Specification Sequence		ModelSpecificationSequence
(0018,9913)	SQ	1	Parameters Specification Sequence		ParametersSpecificationSequence
(0018,9914)	SQ	1	Instruction Sequence		InstructionSequence
(0018,9915)	US	1	Instruction Index		InstructionIndex
(0018,9916)	LO	1	Instruction Text		InstructionText
(0018,9917)	UT	1	Instruction Description		InstructionDescription
(0018,9918)	CS	1	Instruction Performed Flag		InstructionPerformedFlag
(0018,9919)	DT	1	Instruction Performed DateTime		InstructionPerformedDateTime
(0018,991A)	UT	1	Instruction Performance Comment		InstructionPerformanceComment
(0018,991B)	SQ	1	Patient Positioning Instruction Sequence		PatientPositioningInstructionSequence
(0018,991C)	SQ	1	Positioning Method Code Sequence		PositioningMethodCodeSequence
(0018,991D)	SQ	1	Positioning Landmark Sequence		PositioningLandmarkSequence
(0018,991E)	UI	1	Target Frame of Reference UID		TargetFrameOfReferenceUID
(0018,991F)	SQ	1	Acquisition Protocol Element Specification Sequence		AcquisitionProtocolElementSpecificationSequence
(0018,9920)	SQ	1	Acquisition Protocol Element Sequence		AcquisitionProtocolElementSequence
(0018,9921)	US	1	Protocol Element Number		ProtocolElementNumber
(0018,9922)	LO	1	Protocol Element Name		ProtocolElementName
(0018,9923)	UT	1	Protocol Element Characteristics Summary		ProtocolElementCharacteristicsSummary
(0018,9924)	UT	1	Protocol Element Purpose		ProtocolElementPurpose
(0018,9930)	CS	1	Acquisition Motion		AcquisitionMotion
(0018,9931)	SQ	1	Acquisition Start Location Sequence		AcquisitionStartLocationSequence
(0018,9932)	SQ	1	Acquisition End Location Sequence		AcquisitionEndLocationSequence
(0018,9933)	SQ	1	Reconstruction Protocol Element Specification Sequence		ReconstructionProtocolElementSpecificationSequence
(0018,9934)	SQ	1	Reconstruction Protocol Element Sequence		ReconstructionProtocolElementSequence
(0018,9935)	SQ	1	Storage Protocol Element Specification Sequence		StorageProtocolElementSpecificationSequence
(0018,9936)	SQ	1	Storage Protocol Element Sequence		StorageProtocolElementSequence
(0018,9937)	LO	1	Requested Series Description		RequestedSeriesDescription
(0018,9938)	US	1-n	Source Acquisition Protocol Element Number		SourceAcquisitionProtocolElementNumber
(0018,9939)	US	1-n	Source Acquisition Beam Number		SourceAcquisitionBeamNumber
(0018,993A)	US	1-n	Source Reconstruction Protocol Element Number		SourceReconstructionProtocolElementNumber
(0018,993B)	SQ	1	Reconstruction Start Location Sequence		ReconstructionStartLocationSequence
(0018,993C)	SQ	1	Reconstruction End Location Sequence		ReconstructionEndLocationSequence
(0018,993D)	SQ	1	Reconstruction Algorithm Sequence		ReconstructionAlgorithmSequence
(0018,993E)	SQ	1	Reconstruction Target Center Location Sequence		ReconstructionTargetCenterLocationSequence
(0018,9941)	UT	1	Image Filter Description		ImageFilterDescription
(0018,9942)	FD	1	CTDIvol Notification Trigger		CTDIvolNotificationTrigger
(0018,9943)	FD	1	DLP Notification Trigger		DLPNotificationTrigger
(0018,9944)	CS	1	Auto KVP Selection Type		AutoKVPSelectionType
(0018,9945)	FD	1	Auto KVP Upper Bound		AutoKVPUpperBound
(0018,9946)	FD	1	Auto KVP Lower Bound		AutoKVPLowerBound
(0018,9947)	CS	1	Protocol Defined Patient Position		ProtocolDefinedPatientPosition
(0018,A001)	SQ	1	Contributing Equipment Sequence		ContributingEquipmentSequence
(0018,A002)	DT	1	Contribution DateTime		ContributionDateTime
(0018,A003)	ST	1	Contribution Description		ContributionDescription
(0020,000D)	UI	1	Study Instance UID		StudyInstanceUID
(0020,000E)	UI	1	Series Instance UID		SeriesInstanceUID
(0020,0010)	SH	1	Study ID		StudyID
(0020,0011)	IS	1	Series Number		SeriesNumber
(0020,0012)	IS	1	Acquisition Number		AcquisitionNumber
(0020,0013)	IS	1	Instance Number		InstanceNumber
(0020,0014)	IS	1	Isotope Number	RET	IsotopeNumber
(0020,0015)	IS	1	Phase Number	RET	PhaseNumber
(0020,0016)	IS	1	Interval Number	RET	IntervalNumber
(0020,0017)	IS	1	Time Slot Number	RET	TimeSlotNumber
(0020,0018)	IS	1	Angle Number	RET	AngleNumber
(0020,0019)	IS	1	Item Number		ItemNumber
(0020,0020)	CS	2	Patient Orientation		PatientOrientation
(0020,0022)	IS	1	Overlay Number	RET	OverlayNumber
(0020,0024)	IS	1	Curve Number	RET	CurveNumber
(0020,0026)	IS	1	LUT Number	RET	LUTNumber
(0020,0027)	LO	1	Pyramid Label		PyramidLabel
(0020,0030)	DS	3	Image Position	RET	ImagePosition
(0020,0032)	DS	3	Image Position (Patient)		ImagePositionPatient
(0020,0035)	DS	6	Image Orientation	RET	ImageOrientation
(0020,0037)	DS	6	Image Orientation (Patient)		ImageOrientationPatient
(0020,0050)	DS	1	Location	RET	Location
(0020,0052)	UI	1	Frame of Reference UID		FrameOfReferenceUID
(0020,0060)	CS	1	Laterality		Laterality
(0020,0062)	CS	1	Image Laterality		ImageLaterality
(0020,0070)	LO	1	Image Geometry Type	RET	ImageGeometryType
(0020,0080)	CS	1-n	Masking Image	RET	MaskingImage
(0020,00AA)	IS	1	Report Number	RET	ReportNumber
(0020,0100)	IS	1	Temporal Position Identifier		TemporalPositionIdentifier
(0020,0105)	IS	1	Number of Temporal Positions		NumberOfTemporalPositions
(0020,0110)	DS	1	Temporal Resolution		TemporalResolution
(0020,0200)	UI	1	Synchronization Frame of Reference UID		SynchronizationFrameOfReferenceUID
(0020,0242)	UI	1	SOP Instance UID of Concatenation Source		SOPInstanceUIDOfConcatenationSource
(0020,1000)	IS	1	Series in Study	RET	SeriesInStudy
(0020,1001)	IS	1	Acquisitions in Series	RET	AcquisitionsInSeries
(0020,1002)	IS	1	Images in Acquisition		ImagesInAcquisition
(0020,1003)	IS	1	Images in Series	RET	ImagesInSeries
(0020,1004)	IS	1	Acquisitions in Study	RET	AcquisitionsInStudy
(0020,1005)	IS	1	Images in Study	RET	ImagesInStudy
(0020,1020)	LO	1-n	Reference	RET	Reference
(0020,103F)	LO	1	Target Position Reference Indicator		TargetPositionReferenceIndicator
(0020,1040)	LO	1	Position Reference Indicator		PositionReferenceIndicator
(0020,1041)	DS	1	Slice Location		SliceLocation
(0020,1070)	IS	1-n	Other Study Numbers	RET	OtherStudyNumbers
(0020,1200)	IS	1	Number of Patient Related Studies		NumberOfPatientRelatedStudies
(0020,1202)	IS	1	Number of Patient Related Series		NumberOfPatientRelatedSeries
(0020,1204)	IS	1	Number of Patient Related Instances		NumberOfPatientRelatedInstances
(0020,1206)	IS	1	Number of Study Related Series		NumberOfStudyRelatedSeries
(0020,1208)	IS	1	Number of Study Related Instances		NumberOfStudyRelatedInstances
(0020,1209)	IS	1	Number of Series Related Instances		NumberOfSeriesRelatedInstances
(0020,3100)	CS	1-n	Source Image IDs	RET	SourceImageIDs
(0020,3401)	CS	1	Modifying Device ID	RET	ModifyingDeviceID
(0020,3402)	CS	1	Modified Image ID	RET	ModifiedImageID
(0020,3403)	DA	1	Modified Image Date	RET	ModifiedImageDate
(0020,3404)	LO	1	Modifying Device Manufacturer	RET	ModifyingDeviceManufacturer
(0020,3405)	TM	1	Modified Image Time	RET	ModifiedImageTime
(0020,3406)	LO	1	Modified Image Description	RET	ModifiedImageDescription
(0020,4000)	LT	1	Image Comments		ImageComments
(0020,5000)	AT	1-n	Original Image Identification	RET	OriginalImageIdentification
(0020,5002)	LO	1-n	Original Image Identification Nomenclature	RET	OriginalImageIdentificationNomenclature
(0020,9056)	SH	1	Stack ID		StackID
(0020,9057)	UL	1	In-Stack Position Number		InStackPositionNumber
(0020,9071)	SQ	1	Frame Anatomy Sequence		FrameAnatomySequence
(0020,9072)	CS	1	Frame Laterality		FrameLaterality
(0020,9111)	SQ	1	Frame Content Sequence		FrameContentSequence
(0020,9113)	SQ	1	Plane Position Sequence		PlanePositionSequence
(0020,9116)	SQ	1	Plane Orientation Sequence		PlaneOrientationSequence
(0020,9128)	UL	1	Temporal Position Index		TemporalPositionIndex
(0020,9153)	FD	1	Nominal Cardiac Trigger Delay Time		NominalCardiacTriggerDelayTime
(0020,9154)	FL	1	Nominal Cardiac Trigger Time Prior To R-Peak		NominalCardiacTriggerTimePriorToRPeak
(0020,9155)	FL	1	Actual Cardiac Trigger Time Prior To R-Peak		ActualCardiacTriggerTimePriorToRPeak
(0020,9156)	US	1	Frame Acquisition Number		FrameAcquisitionNumber
(0020,9157)	UL	1-n	Dimension Index Values		DimensionIndexValues
(0020,9158)	LT	1	Frame Comments		FrameComments
(0020,9161)	UI	1	Concatenation UID		ConcatenationUID
(0020,9162)	US	1	In-concatenation Number		InConcatenationNumber
(0020,9163)	US	1	In-concatenation Total Number		InConcatenationTotalNumber
(0020,9164)	UI	1	Dimension Organization UID		DimensionOrganizationUID
(0020,9165)	AT	1	Dimension Index Pointer		DimensionIndexPointer
(0020,9167)	AT	1	Functional Group Pointer		FunctionalGroupPointer
(0020,9170)	SQ	1	Unassigned Shared Converted Attributes Sequence		UnassignedSharedConvertedAttributesSequence
(0020,9171)	SQ	1	Unassigned Per-Frame Converted Attributes Sequence		UnassignedPerFrameConvertedAttributesSequence
(0020,9172)	SQ	1	Conversion Source Attributes Sequence		ConversionSourceAttributesSequence
(0020,9213)	LO	1	Dimension Index Private Creator		DimensionIndexPrivateCreator
(0020,9221)	SQ	1	Dimension Organization Sequence		DimensionOrganizationSequence
(0020,9222)	SQ	1	Dimension Index Sequence		DimensionIndexSequence
(0020,9228)	UL	1	Concatenation Frame Offset Number		ConcatenationFrameOffsetNumber
(0020,9238)	LO	1	Functional Group Private Creator		FunctionalGroupPrivateCreator
(0020,9241)	FL	1	Nominal Percentage of Cardiac Phase		NominalPercentageOfCardiacPhase
(0020,9245)	FL	1	Nominal Percentage of Respiratory Phase		NominalPercentageOfRespiratoryPhase
(0020,9246)	FL	1	Starting Respiratory Amplitude		StartingRespiratoryAmplitude
(0020,9247)	CS	1	Starting Respiratory Phase		StartingRespiratoryPhase
(0020,9248)	FL	1	Ending Respiratory Amplitude		EndingRespiratoryAmplitude
(0020,9249)	CS	1	Ending Respiratory Phase		EndingRespiratoryPhase
(0020,9250)	CS	1	Respiratory Trigger Type		RespiratoryTriggerType
(0020,9251)	FD	1	R-R Interval Time Nominal		RRIntervalTimeNominal
(0020,9252)	FD	1	Actual Cardiac Trigger Delay Time		ActualCardiacTriggerDelayTime
(0020,9253)	SQ	1	Respiratory Synchronization Sequence		RespiratorySynchronizationSequence
(0020,9254)	FD	1	Respiratory Interval Time		RespiratoryIntervalTime
(0020,9255)	FD	1	Nominal Respiratory Trigger Delay Time		NominalRespiratoryTriggerDelayTime
(0020,9256)	FD	1	Respiratory Trigger Delay Threshold		RespiratoryTriggerDelayThreshold
(0020,9257)	FD	1	Actual Respiratory Trigger Delay Time		ActualRespiratoryTriggerDelayTime
(0020,9301)	FD	3	Image Position (Volume)		ImagePositionVolume
(0020,9302)	FD	6	Image Orientation (Volume)		ImageOrientationVolume
(0020,9307)	CS	1	Ultrasound Acquisition Geometry		UltrasoundAcquisitionGeometry
(0020,9308)	FD	3	Apex Position		ApexPosition
(0020,9309)	FD	16	Volume to Transducer Mapping Matrix		VolumeToTransducerMappingMatrix
(0020,930A)	FD	16	Volume to Table Mapping Matrix		VolumeToTableMappingMatrix
(0020,930B)	CS	1	Volume to Transducer Relationship		VolumeToTransducerRelationship
(0020,930C)	CS	1	Patient Frame of Reference Source		PatientFrameOfReferenceSource
(0020,930D)	FD	1	Temporal Position Time Offset		TemporalPositionTimeOffset
(0020,930E)	SQ	1	Plane Position (Volume) Sequence		PlanePositionVolumeSequence
(0020,930F)	SQ	1	Plane Orientation (Volume) Sequence		PlaneOrientationVolumeSequence
(0020,9310)	SQ	1	Temporal Position Sequence		TemporalPositionSequence
(0020,9311)	CS	1	Dimension Organization Type		DimensionOrganizationType
(0020,9312)	UI	1	Volume Frame of Reference UID		VolumeFrameOfReferenceUID
(0020,9313)	UI	1	Table Frame of Reference UID		TableFrameOfReferenceUID
(0020,9421)	LO	1	Dimension Description Label		DimensionDescriptionLabel
(0020,9450)	SQ	1	Patient Orientation in Frame Sequence		PatientOrientationInFrameSequence
(0020,9453)	LO	1	Frame Label		FrameLabel
(0020,9518)	US	1-n	Acquisition Index		AcquisitionIndex
(0020,9529)	SQ	1	Contributing SOP Instances Reference Sequence		ContributingSOPInstancesReferenceSequence
(0020,9536)	US	1	Reconstruction Index		ReconstructionIndex
(0022,0001)	US	1	Light Path Filter Pass-Through Wavelength		LightPathFilterPassThroughWavelength
(0022,0002)	US	2	Light Path Filter Pass Band		LightPathFilterPassBand
(0022,0003)	US	1	Image Path Filter Pass-Through Wavelength		ImagePathFilterPassThroughWavelength
(0022,0004)	US	2	Image Path Filter Pass Band		ImagePathFilterPassBand
(0022,0005)	CS	1	Patient Eye Movement Commanded		PatientEyeMovementCommanded
(0022,0006)	SQ	1	Patient Eye Movement Command Code Sequence		PatientEyeMovementCommandCodeSequence
(0022,0007)	FL	1	Spherical Lens Power		SphericalLensPower
(0022,0008)	FL	1	Cylinder Lens Power		CylinderLensPower
(0022,0009)	FL	1	Cylinder Axis		CylinderAxis
(0022,000A)	FL	1	Emmetropic Magnification		EmmetropicMagnification
(0022,000B)	FL	1	Intra Ocular Pressure		IntraOcularPressure
(0022,000C)	FL	1	Horizontal Field of View		HorizontalFieldOfView
(0022,000D)	CS	1	Pupil Dilated		PupilDilated
(0022,000E)	FL	1	Degree of Dilation		DegreeOfDilation
(0022,000F)	FD	1	Vertex Distance		VertexDistance
(0022,0010)	FL	1	Stereo Baseline Angle		StereoBaselineAngle
(0022,0011)	FL	1	Stereo Baseline Displacement		StereoBaselineDisplacement
(0022,0012)	FL	1	Stereo Horizontal Pixel Offset		StereoHorizontalPixelOffset
(0022,0013)	FL	1	Stereo Vertical Pixel Offset		StereoVerticalPixelOffset
(0022,0014)	FL	1	Stereo Rotation		StereoRotation
(0022,0015)	SQ	1	Acquisition Device Type Code Sequence		AcquisitionDeviceTypeCodeSequence
(0022,0016)	SQ	1	Illumination Type Code Sequence		IlluminationTypeCodeSequence
(0022,0017)	SQ	1	Light Path Filter Type Stack Code Sequence		LightPathFilterTypeStackCodeSequence
(0022,0018)	SQ	1	Image Path Filter Type Stack Code Sequence		ImagePathFilterTypeStackCodeSequence
(0022,0019)	SQ	1	Lenses Code Sequence		LensesCodeSequence
(0022,001A)	SQ	1	Channel Description Code Sequence		ChannelDescriptionCodeSequence
(0022,001B)	SQ	1	Refractive State Sequence		RefractiveStateSequence
(0022,001C)	SQ	1	Mydriatic Agent Code Sequence		MydriaticAgentCodeSequence
(0022,001D)	SQ	1	Relative Image Position Code Sequence		RelativeImagePositionCodeSequence
(0022,001E)	FL	1	Camera Angle of View		CameraAngleOfView
(0022,0020)	SQ	1	Stereo Pairs Sequence		StereoPairsSequence
(0022,0021)	SQ	1	Left Image Sequence		LeftImageSequence
(0022,0022)	SQ	1	Right Image Sequence		RightImageSequence
(0022,0028)	CS	1	Stereo Pairs Present		StereoPairsPresent
(0022,0030)	FL	1	Axial Length of the Eye		AxialLengthOfTheEye
(0022,0031)	SQ	1	Ophthalmic Frame Location Sequence		OphthalmicFrameLocationSequence
(0022,0032)	FL	2-2n	Reference Coordinates		ReferenceCoordinates
(0022,0035)	FL	1	Depth Spatial Resolution		DepthSpatialResolution
(0022,0036)	FL	1	Maximum Depth Distortion		MaximumDepthDistortion
(0022,0037)	FL	1	Along-scan Spatial Resolution		AlongScanSpatialResolution
(0022,0038)	FL	1	Maximum Along-scan Distortion		MaximumAlongScanDistortion
(0022,0039)	CS	1	Ophthalmic Image Orientation		OphthalmicImageOrientation
(0022,0041)	FL	1	Depth of Transverse Image		DepthOfTransverseImage
(0022,0042)	SQ	1	Mydriatic Agent Concentration Units Sequence		MydriaticAgentConcentrationUnitsSequence
(0022,0048)	FL	1	Across-scan Spatial Resolution		AcrossScanSpatialResolution
(0022,0049)	FL	1	Maximum Across-scan Distortion		MaximumAcrossScanDistortion
(0022,004E)	DS	1	Mydriatic Agent Concentration		MydriaticAgentConcentration
(0022,0055)	FL	1	Illumination Wave Length		IlluminationWaveLength
(0022,0056)	FL	1	Illumination Power		IlluminationPower
(0022,0057)	FL	1	Illumination Bandwidth		IlluminationBandwidth
(0022,0058)	SQ	1	Mydriatic Agent Sequence		MydriaticAgentSequence
(0022,1007)	SQ	1	Ophthalmic Axial Measurements Right Eye Sequence		OphthalmicAxialMeasurementsRightEyeSequence
(0022,1008)	SQ	1	Ophthalmic Axial Measurements Left Eye Sequence		OphthalmicAxialMeasurementsLeftEyeSequence
(0022,1009)	CS	1	Ophthalmic Axial Measurements Device Type		OphthalmicAxialMeasurementsDeviceType
(0022,1010)	CS	1	Ophthalmic Axial Length Measurements Type		OphthalmicAxialLengthMeasurementsType
(0022,1012)	SQ	1	Ophthalmic Axial Length Sequence		OphthalmicAxialLengthSequence
(0022,1019)	FL	1	Ophthalmic Axial Length		OphthalmicAxialLength
(0022,1024)	SQ	1	Lens Status Code Sequence		LensStatusCodeSequence
(0022,1025)	SQ	1	Vitreous Status Code Sequence		VitreousStatusCodeSequence
(0022,1028)	SQ	1	IOL Formula Code Sequence		IOLFormulaCodeSequence
(0022,1029)	LO	1	IOL Formula Detail		IOLFormulaDetail
(0022,1033)	FL	1	Keratometer Index		KeratometerIndex
(0022,1035)	SQ	1	Source of Ophthalmic Axial Length Code Sequence		SourceOfOphthalmicAxialLengthCodeSequence
(0022,1036)	SQ	1	Source of Corneal Size Data Code Sequence		SourceOfCornealSizeDataCodeSequence
(0022,1037)	FL	1	Target Refraction		TargetRefraction
(0022,1039)	CS	1	Refractive Procedure Occurred		RefractiveProcedureOccurred
(0022,1040)	SQ	1	Refractive Surgery Type Code Sequence		RefractiveSurgeryTypeCodeSequence
(0022,1044)	SQ	1	Ophthalmic Ultrasound Method Code Sequence		OphthalmicUltrasoundMethodCodeSequence
(0022,1045)	SQ	1	Surgically Induced Astigmatism Sequence		SurgicallyInducedAstigmatismSequence
(0022,1046)	CS	1	Type of Optical Correction		TypeOfOpticalCorrection
(0022,1047)	SQ	1	Toric IOL Power Sequence		ToricIOLPowerSequence
(0022,1048)	SQ	1	Predicted Toric Error Sequence		PredictedToricErrorSequence
(0022,1049)	CS	1	Pre-Selected for Implantation		PreSelectedForImplantation
(0022,104A)	SQ	1	Toric IOL Power for Exact Emmetropia Sequence		ToricIOLPowerForExactEmmetropiaSequence
(0022,104B)	SQ	1	Toric IOL Power for Exact Target Refraction Sequence		ToricIOLPowerForExactTargetRefractionSequence
(0022,1050)	SQ	1	Ophthalmic Axial Length Measurements Sequence		OphthalmicAxialLengthMeasurementsSequence
(0022,1053)	FL	1	IOL Power		IOLPower
(0022,1054)	FL	1	Predicted Refractive Error		PredictedRefractiveError
(0022,1059)	FL	1	Ophthalmic Axial Length Velocity		OphthalmicAxialLengthVelocity
(0022,1065)	LO	1	Lens Status Description		LensStatusDescription
(0022,1066)	LO	1	Vitreous Status Description		VitreousStatusDescription
(0022,1090)	SQ	1	IOL Power Sequence		IOLPowerSequence
(0022,1092)	SQ	1	Lens Constant Sequence		LensConstantSequence
(0022,1093)	LO	1	IOL Manufacturer		IOLManufacturer
(0022,1094)	LO	1	Lens Constant Description	RET	LensConstantDescription
(0022,1095)	LO	1	Implant Name		ImplantName
(0022,1096)	SQ	1	Keratometry Measurement Type Code Sequence		KeratometryMeasurementTypeCodeSequence
(0022,1097)	LO	1	Implant Part Number		ImplantPartNumber
(0022,1100)	SQ	1	Referenced Ophthalmic Axial Measurements Sequence		ReferencedOphthalmicAxialMeasurementsSequence
(0022,1101)	SQ	1	Ophthalmic Axial Length Measurements Segment Name Code Sequence		OphthalmicAxialLengthMeasurementsSegmentNameCodeSequence
(0022,1103)	SQ	1	Refractive Error Before Refractive Surgery Code Sequence		RefractiveErrorBeforeRefractiveSurgeryCodeSequence
(0022,1121)	FL	1	IOL Power For Exact Emmetropia		IOLPowerForExactEmmetropia
(0022,1122)	FL	1	IOL Power For Exact Target Refraction		IOLPowerForExactTargetRefraction
(0022,1125)	SQ	1	Anterior Chamber Depth Definition Code Sequence		AnteriorChamberDepthDefinitionCodeSequence
(0022,1127)	SQ	1	Lens Thickness Sequence		LensThicknessSequence
(0022,1128)	SQ	1	Anterior Chamber Depth Sequence		AnteriorChamberDepthSequence
(0022,112A)	SQ	1	Calculation Comment Sequence		CalculationCommentSequence
(0022,112B)	CS	1	Calculation Comment Type		CalculationCommentType
(0022,112C)	LT	1	Calculation Comment		CalculationComment
(0022,1130)	FL	1	Lens Thickness		LensThickness
(0022,1131)	FL	1	Anterior Chamber Depth		AnteriorChamberDepth
(0022,1132)	SQ	1	Source of Lens Thickness Data Code Sequence		SourceOfLensThicknessDataCodeSequence
(0022,1133)	SQ	1	Source of Anterior Chamber Depth Data Code Sequence		SourceOfAnteriorChamberDepthDataCodeSequence
(0022,1134)	SQ	1	Source of Refractive Measurements Sequence		SourceOfRefractiveMeasurementsSequence
(0022,1135)	SQ	1	Source of Refractive Measurements Code Sequence		SourceOfRefractiveMeasurementsCodeSequence
(0022,1140)	CS	1	Ophthalmic Axial Length Measurement Modified		OphthalmicAxialLengthMeasurementModified
(0022,1150)	SQ	1	Ophthalmic Axial Length Data Source Code Sequence		OphthalmicAxialLengthDataSourceCodeSequence
(0022,1153)	SQ	1	Ophthalmic Axial Length Acquisition Method Code Sequence	RET	OphthalmicAxialLengthAcquisitionMethodCodeSequence
(0022,1155)	FL	1	Signal to Noise Ratio		SignalToNoiseRatio
(0022,1159)	LO	1	Ophthalmic Axial Length Data Source Description		OphthalmicAxialLengthDataSourceDescription
(0022,1210)	SQ	1	Ophthalmic Axial Length Measurements Total Length Sequence		OphthalmicAxialLengthMeasurementsTotalLengthSequence
(0022,1211)	SQ	1	Ophthalmic Axial Length Measurements Segmental Length Sequence		OphthalmicAxialLengthMeasurementsSegmentalLengthSequence
(0022,1212)	SQ	1	Ophthalmic Axial Length Measurements Length Summation Sequence		OphthalmicAxialLengthMeasurementsLengthSummationSequence
(0022,1220)	SQ	1	Ultrasound Ophthalmic Axial Length Measurements Sequence		UltrasoundOphthalmicAxialLengthMeasurementsSequence
(0022,1225)	SQ	1	Optical Ophthalmic Axial Length Measurements Sequence		OpticalOphthalmicAxialLengthMeasurementsSequence
(0022,1230)	SQ	1	Ultrasound Selected Ophthalmic Axial Length Sequence		UltrasoundSelectedOphthalmicAxialLengthSequence
(0022,1250)	SQ	1	Ophthalmic Axial Length Selection Method Code Sequence		OphthalmicAxialLengthSelectionMethodCodeSequence
(0022,1255)	SQ	1	Optical Selected Ophthalmic Axial Length Sequence		OpticalSelectedOphthalmicAxialLengthSequence
(0022,1257)	SQ	1	Selected Segmental Ophthalmic Axial Length Sequence		SelectedSegmentalOphthalmicAxialLengthSequence
(0022,1260)	SQ	1	Selected Total Ophthalmic Axial Length Sequence		SelectedTotalOphthalmicAxialLengthSequence
(0022,1262)	SQ	1	Ophthalmic Axial Length Quality Metric Sequence		OphthalmicAxialLengthQualityMetricSequence
(0022,1265)	SQ	1	Ophthalmic Axial Length Quality Metric Type Code Sequence	RET	OphthalmicAxialLengthQualityMetricTypeCodeSequence
(0022,1273)	LO	1	Ophthalmic Axial Length Quality Metric Type Description	RET	OphthalmicAxialLengthQualityMetricTypeDescription
(0022,1300)	SQ	1	Intraocular Lens Calculations Right Eye Sequence		IntraocularLensCalculationsRightEyeSequence
(0022,1310)	SQ	1	Intraocular Lens Calculations Left Eye Sequence		IntraocularLensCalculationsLeftEyeSequence
(0022,1330)	SQ	1	Referenced Ophthalmic Axial Length Measurement QC Image Sequence		ReferencedOphthalmicAxialLengthMeasurementQCImageSequence
(0022,1415)	CS	1	Ophthalmic Mapping Device Type		OphthalmicMappingDeviceType
(0022,1420)	SQ	1	Acquisition Method Code Sequence		AcquisitionMethodCodeSequence
(0022,1423)	SQ	1	Acquisition Method Algorithm Sequence		AcquisitionMethodAlgorithmSequence
(0022,1436)	SQ	1	Ophthalmic Thickness Map Type Code Sequence		OphthalmicThicknessMapTypeCodeSequence
(0022,1443)	SQ	1	Ophthalmic Thickness Mapping Normals Sequence		OphthalmicThicknessMappingNormalsSequence
(0022,1445)	SQ	1	Retinal Thickness Definition Code Sequence		RetinalThicknessDefinitionCodeSequence
(0022,1450)	SQ	1	Pixel Value Mapping to Coded Concept Sequence		PixelValueMappingToCodedConceptSequence
(0022,1452)	US or SS	1	Mapped Pixel Value		MappedPixelValue
(0022,1454)	LO	1	Pixel Value Mapping Explanation		PixelValueMappingExplanation
(0022,1458)	SQ	1	Ophthalmic Thickness Map Quality Threshold Sequence		OphthalmicThicknessMapQualityThresholdSequence
(0022,1460)	FL	1	Ophthalmic Thickness Map Threshold Quality Rating		OphthalmicThicknessMapThresholdQualityRating
(0022,1463)	FL	2	Anatomic Structure Reference Point		AnatomicStructureReferencePoint
(0022,1465)	SQ	1	Registration to Localizer Sequence		RegistrationToLocalizerSequence
(0022,1466)	CS	1	Registered Localizer Units		RegisteredLocalizerUnits
(0022,1467)	FL	2	Registered Localizer Top Left Hand Corner		RegisteredLocalizerTopLeftHandCorner
(0022,1468)	FL	2	Registered Localizer Bottom Right Hand Corner		RegisteredLocalizerBottomRightHandCorner
(0022,1470)	SQ	1	Ophthalmic Thickness Map Quality Rating Sequence		OphthalmicThicknessMapQualityRatingSequence
(0022,1472)	SQ	1	Relevant OPT Attributes Sequence		RelevantOPTAttributesSequence
(0022,1512)	SQ	1	Transformation Method Code Sequence		TransformationMethodCodeSequence
(0022,1513)	SQ	1	Transformation Algorithm Sequence		TransformationAlgorithmSequence
(0022,1515)	CS	1	Ophthalmic Axial Length Method		OphthalmicAxialLengthMethod
(0022,1517)	FL	1	Ophthalmic FOV		OphthalmicFOV
(0022,1518)	SQ	1	Two Dimensional to Three Dimensional Map Sequence		TwoDimensionalToThreeDimensionalMapSequence
(0022,1525)	SQ	1	Wide Field Ophthalmic Photography Quality Rating Sequence		WideFieldOphthalmicPhotographyQualityRatingSequence
(0022,1526)	SQ	1	Wide Field Ophthalmic Photography Quality Threshold Sequence		WideFieldOphthalmicPhotographyQualityThresholdSequence
(0022,1527)	FL	1	Wide Field Ophthalmic Photography Threshold Quality Rating		WideFieldOphthalmicPhotographyThresholdQualityRating
(0022,1528)	FL	1	X Coordinates Center Pixel View Angle		XCoordinatesCenterPixelViewAngle
(0022,1529)	FL	1	Y Coordinates Center Pixel View Angle		YCoordinatesCenterPixelViewAngle
(0022,1530)	UL	1	Number of Map Points		NumberOfMapPoints
(0022,1531)	OF	1	Two Dimensional to Three Dimensional Map Data		TwoDimensionalToThreeDimensionalMapData
(0022,1612)	SQ	1	Derivation Algorithm Sequence		DerivationAlgorithmSequence
(0022,1615)	SQ	1	Ophthalmic Image Type Code Sequence		OphthalmicImageTypeCodeSequence
(0022,1616)	LO	1	Ophthalmic Image Type Description		OphthalmicImageTypeDescription
(0022,1618)	SQ	1	Scan Pattern Type Code Sequence		ScanPatternTypeCodeSequence
(0022,1620)	SQ	1	Referenced Surface Mesh Identification Sequence		ReferencedSurfaceMeshIdentificationSequence
(0022,1622)	CS	1	Ophthalmic Volumetric Properties Flag		OphthalmicVolumetricPropertiesFlag
(0022,1624)	FL	1	Ophthalmic Anatomic Reference Point X-Coordinate		OphthalmicAnatomicReferencePointXCoordinate
(0022,1626)	FL	1	Ophthalmic Anatomic Reference Point Y-Coordinate		OphthalmicAnatomicReferencePointYCoordinate
(0022,1628)	SQ	1	Ophthalmic En Face Image Quality Rating Sequence		OphthalmicEnFaceImageQualityRatingSequence
(0022,1630)	DS	1	Quality Threshold		QualityThreshold
(0022,1640)	SQ	1	OCT B-scan Analysis Acquisition Parameters Sequence		OCTBscanAnalysisAcquisitionParametersSequence
(0022,1642)	UL	1	Number of B-scans Per Frame		NumberOfBscansPerFrame
(0022,1643)	FL	1	B-scan Slab Thickness		BscanSlabThickness
(0022,1644)	FL	1	Distance Between B-scan Slabs		DistanceBetweenBscanSlabs
(0022,1645)	FL	1	B-scan Cycle Time		BscanCycleTime
(0022,1646)	FL	1-n	B-scan Cycle Time Vector		BscanCycleTimeVector
(0022,1649)	FL	1	A-scan Rate		AscanRate
(0022,1650)	FL	1	B-scan Rate		BscanRate
(0022,1658)	UL	1	Surface Mesh Z-Pixel Offset		SurfaceMeshZPixelOffset
(0024,0010)	FL	1	Visual Field Horizontal Extent		VisualFieldHorizontalExtent
(0024,0011)	FL	1	Visual Field Vertical Extent		VisualFieldVerticalExtent
(0024,0012)	CS	1	Visual Field Shape		VisualFieldShape
(0024,0016)	SQ	1	Screening Test Mode Code Sequence		ScreeningTestModeCodeSequence
(0024,0018)	FL	1	Maximum Stimulus Luminance		MaximumStimulusLuminance
(0024,0020)	FL	1	Background Luminance		BackgroundLuminance
(0024,0021)	SQ	1	Stimulus Color Code Sequence		StimulusColorCodeSequence
(0024,0024)	SQ	1	Background Illumination Color Code Sequence		BackgroundIlluminationColorCodeSequence
(0024,0025)	FL	1	Stimulus Area		StimulusArea
(0024,0028)	FL	1	Stimulus Presentation Time		StimulusPresentationTime
(0024,0032)	SQ	1	Fixation Sequence		FixationSequence
(0024,0033)	SQ	1	Fixation Monitoring Code Sequence		FixationMonitoringCodeSequence
(0024,0034)	SQ	1	Visual Field Catch Trial Sequence		VisualFieldCatchTrialSequence
(0024,0035)	US	1	Fixation Checked Quantity		FixationCheckedQuantity
(0024,0036)	US	1	Patient Not Properly Fixated Quantity		PatientNotProperlyFixatedQuantity
(0024,0037)	CS	1	Presented Visual Stimuli Data Flag		PresentedVisualStimuliDataFlag
(0024,0038)	US	1	Number of Visual Stimuli		NumberOfVisualStimuli
(0024,0039)	CS	1	Excessive Fixation Losses Data Flag		ExcessiveFixationLossesDataFlag
(0024,0040)	CS	1	Excessive Fixation Losses		ExcessiveFixationLosses
(0024,0042)	US	1	Stimuli Retesting Quantity		StimuliRetestingQuantity
(0024,0044)	LT	1	Comments on Patient's Performance of Visual Field		CommentsOnPatientPerformanceOfVisualField
(0024,0045)	CS	1	False Negatives Estimate Flag		FalseNegativesEstimateFlag
(0024,0046)	FL	1	False Negatives Estimate		FalseNegativesEstimate
(0024,0048)	US	1	Negative Catch Trials Quantity		NegativeCatchTrialsQuantity
(0024,0050)	US	1	False Negatives Quantity		FalseNegativesQuantity
(0024,0051)	CS	1	Excessive False Negatives Data Flag		ExcessiveFalseNegativesDataFlag
(0024,0052)	CS	1	Excessive False Negatives		ExcessiveFalseNegatives
(0024,0053)	CS	1	False Positives Estimate Flag		FalsePositivesEstimateFlag
(0024,0054)	FL	1	False Positives Estimate		FalsePositivesEstimate
(0024,0055)	CS	1	Catch Trials Data Flag		CatchTrialsDataFlag
(0024,0056)	US	1	Positive Catch Trials Quantity		PositiveCatchTrialsQuantity
(0024,0057)	CS	1	Test Point Normals Data Flag		TestPointNormalsDataFlag
(0024,0058)	SQ	1	Test Point Normals Sequence		TestPointNormalsSequence
(0024,0059)	CS	1	Global Deviation Probability Normals Flag		GlobalDeviationProbabilityNormalsFlag
(0024,0060)	US	1	False Positives Quantity		FalsePositivesQuantity
(0024,0061)	CS	1	Excessive False Positives Data Flag		ExcessiveFalsePositivesDataFlag
(0024,0062)	CS	1	Excessive False Positives		ExcessiveFalsePositives
(0024,0063)	CS	1	Visual Field Test Normals Flag		VisualFieldTestNormalsFlag
(0024,0064)	SQ	1	Results Normals Sequence		ResultsNormalsSequence
(0024,0065)	SQ	1	Age Corrected Sensitivity Deviation Algorithm Sequence		AgeCorrectedSensitivityDeviationAlgorithmSequence
(0024,0066)	FL	1	Global Deviation From Normal		GlobalDeviationFromNormal
(0024,0067)	SQ	1	Generalized Defect Sensitivity Deviation Algorithm Sequence		GeneralizedDefectSensitivityDeviationAlgorithmSequence
(0024,0068)	FL	1	Localized Deviation From Normal		LocalizedDeviationFromNormal
(0024,0069)	LO	1	Patient Reliability Indicator		PatientReliabilityIndicator
(0024,0070)	FL	1	Visual Field Mean Sensitivity		VisualFieldMeanSensitivity
(0024,0071)	FL	1	Global Deviation Probability		GlobalDeviationProbability
(0024,0072)	CS	1	Local Deviation Probability Normals Flag		LocalDeviationProbabilityNormalsFlag
(0024,0073)	FL	1	Localized Deviation Probability		LocalizedDeviationProbability
(0024,0074)	CS	1	Short Term Fluctuation Calculated		ShortTermFluctuationCalculated
(0024,0075)	FL	1	Short Term Fluctuation		ShortTermFluctuation
(0024,0076)	CS	1	Short Term Fluctuation Probability Calculated		ShortTermFluctuationProbabilityCalculated
(0024,0077)	FL	1	Short Term Fluctuation Probability		ShortTermFluctuationProbability
(0024,0078)	CS	1	Corrected Localized Deviation From Normal Calculated		CorrectedLocalizedDeviationFromNormalCalculated
(0024,0079)	FL	1	Corrected Localized Deviation From Normal		CorrectedLocalizedDeviationFromNormal
(0024,0080)	CS	1	Corrected Localized Deviation From Normal Probability Calculated		CorrectedLocalizedDeviationFromNormalProbabilityCalculated
(0024,0081)	FL	1	Corrected Localized Deviation From Normal Probability		CorrectedLocalizedDeviationFromNormalProbability
(0024,0083)	SQ	1	Global Deviation Probability Sequence		GlobalDeviationProbabilitySequence
(0024,0085)	SQ	1	Localized Deviation Probability Sequence		LocalizedDeviationProbabilitySequence
(0024,0086)	CS	1	Foveal Sensitivity Measured		FovealSensitivityMeasured
(0024,0087)	FL	1	Foveal Sensitivity		FovealSensitivity
(0024,0088)	FL	1	Visual Field Test Duration		VisualFieldTestDuration
(0024,0089)	SQ	1	Visual Field Test Point Sequence		VisualFieldTestPointSequence
(0024,0090)	FL	1	Visual Field Test Point X-Coordinate		VisualFieldTestPointXCoordinate
(0024,0091)	FL	1	Visual Field Test Point Y-Coordinate		VisualFieldTestPointYCoordinate
(0024,0092)	FL	1	Age Corrected Sensitivity Deviation Value		AgeCorrectedSensitivityDeviationValue
(0024,0093)	CS	1	Stimulus Results		StimulusResults
(0024,0094)	FL	1	Sensitivity Value		SensitivityValue
(0024,0095)	CS	1	Retest Stimulus Seen		RetestStimulusSeen
(0024,0096)	FL	1	Retest Sensitivity Value		RetestSensitivityValue
(0024,0097)	SQ	1	Visual Field Test Point Normals Sequence		VisualFieldTestPointNormalsSequence
(0024,0098)	FL	1	Quantified Defect		QuantifiedDefect
(0024,0100)	FL	1	Age Corrected Sensitivity Deviation Probability Value		AgeCorrectedSensitivityDeviationProbabilityValue
(0024,0102)	CS	1	Generalized Defect Corrected Sensitivity Deviation Flag		GeneralizedDefectCorrectedSensitivityDeviationFlag
(0024,0103)	FL	1	Generalized Defect Corrected Sensitivity Deviation Value		GeneralizedDefectCorrectedSensitivityDeviationValue
(0024,0104)	FL	1	Generalized Defect Corrected Sensitivity Deviation Probability Value		GeneralizedDefectCorrectedSensitivityDeviationProbabilityValue
(0024,0105)	FL	1	Minimum Sensitivity Value		MinimumSensitivityValue
(0024,0106)	CS	1	Blind Spot Localized		BlindSpotLocalized
(0024,0107)	FL	1	Blind Spot X-Coordinate		BlindSpotXCoordinate
(0024,0108)	FL	1	Blind Spot Y-Coordinate		BlindSpotYCoordinate
(0024,0110)	SQ	1	Visual Acuity Measurement Sequence		VisualAcuityMeasurementSequence
(0024,0112)	SQ	1	Refractive Parameters Used on Patient Sequence		RefractiveParametersUsedOnPatientSequence
(0024,0113)	CS	1	Measurement Laterality		MeasurementLaterality
(0024,0114)	SQ	1	Ophthalmic Patient Clinical Information Left Eye Sequence		OphthalmicPatientClinicalInformationLeftEyeSequence
(0024,0115)	SQ	1	Ophthalmic Patient Clinical Information Right Eye Sequence		OphthalmicPatientClinicalInformationRightEyeSequence
(0024,0117)	CS	1	Foveal Point Normative Data Flag		FovealPointNormativeDataFlag
(0024,0118)	FL	1	Foveal Point Probability Value		FovealPointProbabilityValue
(0024,0120)	CS	1	Screening Baseline Measured		ScreeningBaselineMeasured
(0024,0122)	SQ	1	Screening Baseline Measured Sequence		ScreeningBaselineMeasuredSequence
(0024,0124)	CS	1	Screening Baseline Type		ScreeningBaselineType
(0024,0126)	FL	1	Screening Baseline Value		ScreeningBaselineValue
(0024,0202)	LO	1	Algorithm Source		AlgorithmSource
(0024,0306)	LO	1	Data Set Name		DataSetName
(0024,0307)	LO	1	Data Set Version		DataSetVersion
(0024,0308)	LO	1	Data Set Source		DataSetSource
(0024,0309)	LO	1	Data Set Description		DataSetDescription
(0024,0317)	SQ	1	Visual Field Test Reliability Global Index Sequence		VisualFieldTestReliabilityGlobalIndexSequence
(0024,0320)	SQ	1	Visual Field Global Results Index Sequence		VisualFieldGlobalResultsIndexSequence
(0024,0325)	SQ	1	Data Observation Sequence		DataObservationSequence
(0024,0338)	CS	1	Index Normals Flag		IndexNormalsFlag
(0024,0341)	FL	1	Index Probability		IndexProbability
(0024,0344)	SQ	1	Index Probability Sequence		IndexProbabilitySequence
(0028,0002)	US	1	Samples per Pixel		SamplesPerPixel
(0028,0003)	US	1	Samples per Pixel Used		SamplesPerPixelUsed
(0028,0004)	CS	1	Photometric Interpretation		PhotometricInterpretation
(0028,0005)	US	1	Image Dimensions	RET	ImageDimensions
(0028,0006)	US	1	Planar Configuration		PlanarConfiguration
(0028,0008)	IS	1	Number of Frames		NumberOfFrames
(0028,0009)	AT	1-n	Frame Increment Pointer		FrameIncrementPointer
(0028,000A)	AT	1-n	Frame Dimension Pointer		FrameDimensionPointer
(0028,0010)	US	1	Rows		Rows
(0028,0011)	US	1	Columns		Columns
(0028,0012)	US	1	Planes	RET	Planes
(0028,0014)	US	1	Ultrasound Color Data Present		UltrasoundColorDataPresent
(0028,0030)	DS	2	Pixel Spacing		PixelSpacing
(0028,0031)	DS	2	Zoom Factor		ZoomFactor
(0028,0032)	DS	2	Zoom Center		ZoomCenter
(0028,0034)	IS	2	Pixel Aspect Ratio		PixelAspectRatio
(0028,0040)	CS	1	Image Format	RET	ImageFormat
(0028,0050)	LO	1-n	Manipulated Image	RET	ManipulatedImage
(0028,0051)	CS	1-n	Corrected Image		CorrectedImage
(0028,005F)	LO	1	Compression Recognition Code	RET	CompressionRecognitionCode
(0028,0060)	CS	1	Compression Code	RET	CompressionCode
(0028,0061)	SH	1	Compression Originator	RET	CompressionOriginator
(0028,0062)	LO	1	Compression Label	RET	CompressionLabel
(0028,0063)	SH	1	Compression Description	RET	CompressionDescription
(0028,0065)	CS	1-n	Compression Sequence	RET	CompressionSequence
(0028,0066)	AT	1-n	Compression Step Pointers	RET	CompressionStepPointers
(0028,0068)	US	1	Repeat Interval	RET	RepeatInterval
(0028,0069)	US	1	Bits Grouped	RET	BitsGrouped
(0028,0070)	US	1-n	Perimeter Table	RET	PerimeterTable
(0028,0071)	US or SS	1	Perimeter Value	RET	PerimeterValue
(0028,0080)	US	1	Predictor Rows	RET	PredictorRows
(0028,0081)	US	1	Predictor Columns	RET	PredictorColumns
(0028,0082)	US	1-n	Predictor Constants	RET	PredictorConstants
(0028,0090)	CS	1	Blocked Pixels	RET	BlockedPixels
(0028,0091)	US	1	Block Rows	RET	BlockRows
(0028,0092)	US	1	Block Columns	RET	BlockColumns
(0028,0093)	US	1	Row Overlap	RET	RowOverlap
(0028,0094)	US	1	Column Overlap	RET	ColumnOverlap
(0028,0100)	US	1	Bits Allocated		BitsAllocated
(0028,0101)	US	1	Bits Stored		BitsStored
(0028,0102)	US	1	High Bit		HighBit
(0028,0103)	US	1	Pixel Representation		PixelRepresentation
(0028,0104)	US or SS	1	Smallest Valid Pixel Value	RET	SmallestValidPixelValue
(0028,0105)	US or SS	1	Largest Valid Pixel Value	RET	LargestValidPixelValue
(0028,0106)	US or SS	1	Smallest Image Pixel Value		SmallestImagePixelValue
(0028,0107)	US or SS	1	Largest Image Pixel Value		LargestImagePixelValue
(0028,0108)	US or SS	1	Smallest Pixel Value in Series		SmallestPixelValueInSeries
(0028,0109)	US or SS	1	Largest Pixel Value in Series		LargestPixelValueInSeries
(0028,0110)	US or SS	1	Smallest Image Pixel Value in Plane	RET	SmallestImagePixelValueInPlane
(0028,0111)	US or SS	1	Largest Image Pixel Value in Plane	RET	LargestImagePixelValueInPlane
(0028,0120)	US or SS	1	Pixel Padding Value		PixelPaddingValue
(0028,0121)	US or SS	1	Pixel Padding Range Limit		PixelPaddingRangeLimit
(0028,0122)	FL	1	Float Pixel Padding Value		FloatPixelPaddingValue
(0028,0123)	FD	1	Double Float Pixel Padding Value		DoubleFloatPixelPaddingValue
(0028,0124)	FL	1	Float Pixel Padding Range Limit		FloatPixelPaddingRangeLimit
(0028,0125)	FD	1	Double Float Pixel Padding Range Limit		DoubleFloatPixelPaddingRangeLimit
(0028,0200)	US	1	Image Location	RET	ImageLocation
(0028,0300)	CS	1	Quality Control Image		QualityControlImage
(0028,0301)	CS	1	Burned In Annotation		BurnedInAnnotation
(0028,0302)	CS	1	Recognizable Visual Features		RecognizableVisualFeatures
(0028,0303)	CS	1	Longitudinal Temporal Information Modified		LongitudinalTemporalInformationModified
(0028,0304)	UI	1	Referenced Color Palette Instance UID		ReferencedColorPaletteInstanceUID
(0028,0400)	US	1	Rows For Nth Order Coefficients	RET	RowsForNthOrderCoefficients
(0028,0401)	US	1	Columns For Nth Order Coefficients	RET	ColumnsForNthOrderCoefficients
(0028,0402)	LO	1-n	Coefficient Coding	RET	CoefficientCoding
(0028,0403)	AT	1-n	Coefficient Coding Pointers	RET	CoefficientCodingPointers
(0028,0404)	AT	1-n	Details of Coefficients	RET	DetailsOfCoefficients
(0028,0700)	LO	1	DCT Label	RET	DCTLabel
(0028,0701)	CS	1-n	Data Block Description	RET	DataBlockDescription
(0028,0702)	AT	1-n	Data Block	RET	DataBlock
(0028,0710)	US	1	Normalization Factor Format	RET	NormalizationFactorFormat
(0028,0720)	US	1	Zonal Map Number Format	RET	ZonalMapNumberFormat
(0028,0721)	AT	1-n	Zonal Map Location	RET	ZonalMapLocation
(0028,0722)	US	1	Zonal Map Format	RET	ZonalMapFormat
(0028,0730)	US	1	Adaptive Map Format	RET	AdaptiveMapFormat
(0028,0740)	US	1	Code Number Format	RET	CodeNumberFormat
(0028,0800)	CS	1-n	Code Label	RET	CodeLabel
(0028,0802)	US	1	Number of Tables	RET	NumberOfTables
(0028,0803)	AT	1-n	Code Table Location	RET	CodeTableLocation
(0028,0804)	US	1	Bits For Code Word	RET	BitsForCodeWord
(0028,0808)	AT	1-n	Image Data Location	RET	ImageDataLocation
(0028,0A02)	CS	1	Pixel Spacing Calibration Type		PixelSpacingCalibrationType
(0028,0A04)	LO	1	Pixel Spacing Calibration Description		PixelSpacingCalibrationDescription
(0028,1040)	CS	1	Pixel Intensity Relationship		PixelIntensityRelationship
(0028,1041)	SS	1	Pixel Intensity Relationship Sign		PixelIntensityRelationshipSign
(0028,1050)	DS	1-n	Window Center		WindowCenter
(0028,1051)	DS	1-n	Window Width		WindowWidth
(0028,1052)	DS	1	Rescale Intercept		RescaleIntercept
(0028,1053)	DS	1	Rescale Slope		RescaleSlope
(0028,1054)	LO	1	Rescale Type		RescaleType
(0028,1055)	LO	1-n	Window Center & Width Explanation		WindowCenterWidthExplanation
(0028,1056)	CS	1	VOI LUT Function		VOILUTFunction
(0028,1080)	CS	1	Gray Scale	RET	GrayScale
(0028,1090)	CS	1	Recommended Viewing Mode		RecommendedViewingMode
(0028,1100)	US or SS	3	Gray Lookup Table Descriptor	RET	GrayLookupTableDescriptor
(0028,1101)	US or SS	3	Red Palette Color Lookup Table Descriptor		RedPaletteColorLookupTableDescriptor
(0028,1102)	US or SS	3	Green Palette Color Lookup Table Descriptor		GreenPaletteColorLookupTableDescriptor
(0028,1103)	US or SS	3	Blue Palette Color Lookup Table Descriptor		BluePaletteColorLookupTableDescriptor
(0028,1104)	US	3	Alpha Palette Color Lookup Table Descriptor		AlphaPaletteColorLookupTableDescriptor
(0028,1111)	US or SS	4	Large Red Palette Color Lookup Table Descriptor	RET	LargeRedPaletteColorLookupTableDescriptor
(0028,1112)	US or SS	4	Large Green Palette Color Lookup Table Descriptor	RET	LargeGreenPaletteColorLookupTableDescriptor
(0028,1113)	US or SS	4	Large Blue Palette Color Lookup Table Descriptor	RET	LargeBluePaletteColorLookupTableDescriptor
(0028,1199)	UI	1	Palette Color Lookup Table UID		PaletteColorLookupTableUID
(0028,1200)	US or SS or OW	1-n or 1	Gray Lookup Table Data	RET	GrayLookupTableData
(0028,1201)	OW	1	Red Palette Color Lookup Table Data		RedPaletteColorLookupTableData
(0028,1202)	OW	1	Green Palette Color Lookup Table Data		GreenPaletteColorLookupTableData
(0028,1203)	OW	1	Blue Palette Color Lookup Table Data		BluePaletteColorLookupTableData
(0028,1204)	OW	1	Alpha Palette Color Lookup Table Data		AlphaPaletteColorLookupTableData
(0028,1211)	OW	1	Large Red Palette Color Lookup Table Data	RET	LargeRedPaletteColorLookupTableData
(0028,1212)	OW	1	Large Green Palette Color Lookup Table Data	RET	LargeGreenPaletteColorLookupTableData
(0028,1213)	OW	1	Large Blue Palette Color Lookup Table Data	RET	LargeBluePaletteColorLookupTableData
(0028,1214)	UI	1	Large Palette Color Lookup Table UID	RET	LargePaletteColorLookupTableUID
(0028,1221)	OW	1	Segmented Red Palette Color Lookup Table Data		SegmentedRedPaletteColorLookupTableData
(0028,1222)	OW	1	Segmented Green Palette Color Lookup Table Data		SegmentedGreenPaletteColorLookupTableData
(0028,1223)	OW	1	Segmented Blue Palette Color Lookup Table Data		SegmentedBluePaletteColorLookupTableData
(0028,1224)	OW	1	Segmented Alpha Palette Color Lookup Table Data		SegmentedAlphaPaletteColorLookupTableData
(0028,1230)	SQ	1	Stored Value Color Range Sequence		StoredValueColorRangeSequence
(0028,1231)	FD	1	Minimum Stored Value Mapped		MinimumStoredValueMapped
(0028,1232)	FD	1	Maximum Stored Value Mapped		MaximumStoredValueMapped
(0028,1300)	CS	1	Breast Implant Present		BreastImplantPresent
(0028,1350)	CS	1	Partial View		PartialView
(0028,1351)	ST	1	Partial View Description		PartialViewDescription
(0028,1352)	SQ	1	Partial View Code Sequence		PartialViewCodeSequence
(0028,135A)	CS	1	Spatial Locations Preserved		SpatialLocationsPreserved
(0028,1401)	SQ	1	Data Frame Assignment Sequence		DataFrameAssignmentSequence
(0028,1402)	CS	1	Data Path Assignment		DataPathAssignment
(0028,1403)	US	1	Bits Mapped to Color Lookup Table		BitsMappedToColorLookupTable
(0028,1404)	SQ	1	Blending LUT 1 Sequence		BlendingLUT1Sequence
(0028,1405)	CS	1	Blending LUT 1 Transfer Function		BlendingLUT1TransferFunction
(0028,1406)	FD	1	Blending Weight Constant		BlendingWeightConstant
(0028,1407)	US	3	Blending Lookup Table Descriptor		BlendingLookupTableDescriptor
(0028,1408)	OW	1	Blending Lookup Table Data		BlendingLookupTableData
(0028,140B)	SQ	1	Enhanced Palette Color Lookup Table Sequence		EnhancedPaletteColorLookupTableSequence
(0028,140C)	SQ	1	Blending LUT 2 Sequence		BlendingLUT2Sequence
(0028,140D)	CS	1	Blending LUT 2 Transfer Function		BlendingLUT2TransferFunction
(0028,140E)	CS	1	Data Path ID		DataPathID
(0028,140F)	CS	1	RGB LUT Transfer Function		RGBLUTTransferFunction
(0028,1410)	CS	1	Alpha LUT Transfer Function		AlphaLUTTransferFunction
(0028,2000)	OB	1	ICC Profile		ICCProfile
(0028,2002)	CS	1	Color Space		ColorSpace
(0028,2110)	CS	1	Lossy Image Compression		LossyImageCompression
(0028,2112)	DS	1-n	Lossy Image Compression Ratio		LossyImageCompressionRatio
(0028,2114)	CS	1-n	Lossy Image Compression Method		LossyImageCompressionMethod
(0028,3000)	SQ	1	Modality LUT Sequence		ModalityLUTSequence
(0028,3001)	SQ	1	Variable Modality LUT Sequence		VariableModalityLUTSequence
(0028,3002)	US or SS	3	LUT Descriptor		LUTDescriptor
(0028,3003)	LO	1	LUT Explanation		LUTExplanation
(0028,3004)	LO	1	Modality LUT Type		ModalityLUTType
(0028,3006)	US or OW	1-n	LUT Data		LUTData
(0028,3010)	SQ	1	VOI LUT Sequence		VOILUTSequence
(0028,3110)	SQ	1	Softcopy VOI LUT Sequence		SoftcopyVOILUTSequence
(0028,4000)	LT	1	Image Presentation Comments	RET	ImagePresentationComments
(0028,5000)	SQ	1	Bi-Plane Acquisition Sequence	RET	BiPlaneAcquisitionSequence
(0028,6010)	US	1	Representative Frame Number		RepresentativeFrameNumber
(0028,6020)	US	1-n	Frame Numbers of Interest (FOI)		FrameNumbersOfInterest
(0028,6022)	LO	1-n	Frame of Interest Description		FrameOfInterestDescription
(0028,6023)	CS	1-n	Frame of Interest Type		FrameOfInterestType
(0028,6030)	US	1-n	Mask Pointer(s)	RET	MaskPointers
(0028,6040)	US	1-n	R Wave Pointer		RWavePointer
(0028,6100)	SQ	1	Mask Subtraction Sequence		MaskSubtractionSequence
(0028,6101)	CS	1	Mask Operation		MaskOperation
(0028,6102)	US	2-2n	Applicable Frame Range		ApplicableFrameRange
(0028,6110)	US	1-n	Mask Frame Numbers		MaskFrameNumbers
(0028,6112)	US	1	Contrast Frame Averaging		ContrastFrameAveraging
(0028,6114)	FL	2	Mask Sub-pixel Shift		MaskSubPixelShift
(0028,6120)	SS	1	TID Offset		TIDOffset
(0028,6190)	ST	1	Mask Operation Explanation		MaskOperationExplanation
(0028,7000)	SQ	1	Equipment Administrator Sequence		EquipmentAdministratorSequence
(0028,7001)	US	1	Number of Display Subsystems		NumberOfDisplaySubsystems
(0028,7002)	US	1	Current Configuration ID		CurrentConfigurationID
(0028,7003)	US	1	Display Subsystem ID		DisplaySubsystemID
(0028,7004)	SH	1	Display Subsystem Name		DisplaySubsystemName
(0028,7005)	LO	1	Display Subsystem Description		DisplaySubsystemDescription
(0028,7006)	CS	1	System Status		SystemStatus
(0028,7007)	LO	1	System Status Comment		SystemStatusComment
(0028,7008)	SQ	1	Target Luminance Characteristics Sequence		TargetLuminanceCharacteristicsSequence
(0028,7009)	US	1	Luminance Characteristics ID		LuminanceCharacteristicsID
(0028,700A)	SQ	1	Display Subsystem Configuration Sequence		DisplaySubsystemConfigurationSequence
(0028,700B)	US	1	Configuration ID		ConfigurationID
(0028,700C)	SH	1	Configuration Name		ConfigurationName
(0028,700D)	LO	1	Configuration Description		ConfigurationDescription
(0028,700E)	US	1	Referenced Target Luminance Characteristics ID		ReferencedTargetLuminanceCharacteristicsID
(0028,700F)	SQ	1	QA Results Sequence		QAResultsSequence
(0028,7010)	SQ	1	Display Subsystem QA Results Sequence		DisplaySubsystemQAResultsSequence
(0028,7011)	SQ	1	Configuration QA Results Sequence		ConfigurationQAResultsSequence
(0028,7012)	SQ	1	Measurement Equipment Sequence		MeasurementEquipmentSequence
(0028,7013)	CS	1-n	Measurement Functions		MeasurementFunctions
(0028,7014)	CS	1	Measurement Equipment Type		MeasurementEquipmentType
(0028,7015)	SQ	1	Visual Evaluation Result Sequence		VisualEvaluationResultSequence
(0028,7016)	SQ	1	Display Calibration Result Sequence		DisplayCalibrationResultSequence
(0028,7017)	US	1	DDL Value		DDLValue
(0028,7018)	FL	2	CIExy White Point		CIExyWhitePoint
(0028,7019)	CS	1	Display Function Type		DisplayFunctionType
(0028,701A)	FL	1	Gamma Value		GammaValue
(0028,701B)	US	1	Number of Luminance Points		NumberOfLuminancePoints
(0028,701C)	SQ	1	Luminance Response Sequence		LuminanceResponseSequence
(0028,701D)	FL	1	Target Minimum Luminance		TargetMinimumLuminance
(0028,701E)	FL	1	Target Maximum Luminance		TargetMaximumLuminance
(0028,701F)	FL	1	Luminance Value		LuminanceValue
(0028,7020)	LO	1	Luminance Response Description		LuminanceResponseDescription
(0028,7021)	CS	1	White Point Flag		WhitePointFlag
(0028,7022)	SQ	1	Display Device Type Code Sequence		DisplayDeviceTypeCodeSequence
(0028,7023)	SQ	1	Display Subsystem Sequence		DisplaySubsystemSequence
(0028,7024)	SQ	1	Luminance Result Sequence		LuminanceResultSequence
(0028,7025)	CS	1	Ambient Light Value Source		AmbientLightValueSource
(0028,7026)	CS	1-n	Measured Characteristics		MeasuredCharacteristics
(0028,7027)	SQ	1	Luminance Uniformity Result Sequence		LuminanceUniformityResultSequence
(0028,7028)	SQ	1	Visual Evaluation Test Sequence		VisualEvaluationTestSequence
(0028,7029)	CS	1	Test Result		TestResult
(0028,702A)	LO	1	Test Result Comment		TestResultComment
(0028,702B)	CS	1	Test Image Validation		TestImageValidation
(0028,702C)	SQ	1	Test Pattern Code Sequence		TestPatternCodeSequence
(0028,702D)	SQ	1	Measurement Pattern Code Sequence		MeasurementPatternCodeSequence
(0028,702E)	SQ	1	Visual Evaluation Method Code Sequence		VisualEvaluationMethodCodeSequence
(0028,7FE0)	UR	1	Pixel Data Provider URL		PixelDataProviderURL
(0028,9001)	UL	1	Data Point Rows		DataPointRows
(0028,9002)	UL	1	Data Point Columns		DataPointColumns
(0028,9003)	CS	1	Signal Domain Columns		SignalDomainColumns
(0028,9099)	US	1	Largest Monochrome Pixel Value	RET	LargestMonochromePixelValue
(0028,9108)	CS	1	Data Representation		DataRepresentation
(0028,9110)	SQ	1	Pixel Measures Sequence		PixelMeasuresSequence
(0028,9132)	SQ	1	Frame VOI LUT Sequence		FrameVOILUTSequence
(0028,9145)	SQ	1	Pixel Value Transformation Sequence		PixelValueTransformationSequence
(0028,9235)	CS	1	Signal Domain Rows		SignalDomainRows
(0028,9411)	FL	1	Display Filter Percentage		DisplayFilterPercentage
(0028,9415)	SQ	1	Frame Pixel Shift Sequence		FramePixelShiftSequence
(0028,9416)	US	1	Subtraction Item ID		SubtractionItemID
(0028,9422)	SQ	1	Pixel Intensity Relationship LUT Sequence		PixelIntensityRelationshipLUTSequence
(0028,9443)	SQ	1	Frame Pixel Data Properties Sequence		FramePixelDataPropertiesSequence
(0028,9444)	CS	1	Geometrical Properties		GeometricalProperties
(0028,9445)	FL	1	Geometric Maximum Distortion		GeometricMaximumDistortion
(0028,9446)	CS	1-n	Image Processing Applied		ImageProcessingApplied
(0028,9454)	CS	1	Mask Selection Mode		MaskSelectionMode
(0028,9474)	CS	1	LUT Function		LUTFunction
(0028,9478)	FL	1	Mask Visibility Percentage		MaskVisibilityPercentage
(0028,9501)	SQ	1	Pixel Shift Sequence		PixelShiftSequence
(0028,9502)	SQ	1	Region Pixel Shift Sequence		RegionPixelShiftSequence
(0028,9503)	SS	2-2n	Vertices of the Region		VerticesOfTheRegion
(0028,9505)	SQ	1	Multi-frame Presentation Sequence		MultiFramePresentationSequence
(0028,9506)	US	2-2n	Pixel Shift Frame Range		PixelShiftFrameRange
(0028,9507)	US	2-2n	LUT Frame Range		LUTFrameRange
(0028,9520)	DS	16	Image to Equipment Mapping Matrix		ImageToEquipmentMappingMatrix
(0028,9537)	CS	1	Equipment Coordinate System Identification		EquipmentCoordinateSystemIdentification
(0032,000A)	CS	1	Study Status ID	RET	StudyStatusID
(0032,000C)	CS	1	Study Priority ID	RET	StudyPriorityID
(0032,0012)	LO	1	Study ID Issuer	RET	StudyIDIssuer
(0032,0032)	DA	1	Study Verified Date	RET	StudyVerifiedDate
(0032,0033)	TM	1	Study Verified Time	RET	StudyVerifiedTime
(0032,0034)	DA	1	Study Read Date	RET	StudyReadDate
(0032,0035)	TM	1	Study Read Time	RET	StudyReadTime
(0032,1000)	DA	1	Scheduled Study Start Date	RET	ScheduledStudyStartDate
(0032,1001)	TM	1	Scheduled Study Start Time	RET	ScheduledStudyStartTime
(0032,1010)	DA	1	Scheduled Study Stop Date	RET	ScheduledStudyStopDate
(0032,1011)	TM	1	Scheduled Study Stop Time	RET	ScheduledStudyStopTime
(0032,1020)	LO	1	Scheduled Study Location	RET	ScheduledStudyLocation
(0032,1021)	AE	1-n	Scheduled Study Location AE Title	RET	ScheduledStudyLocationAETitle
(0032,1030)	LO	1	Reason for Study	RET	ReasonForStudy
(0032,1031)	SQ	1	Requesting Physician Identification Sequence		RequestingPhysicianIdentificationSequence
(0032,1032)	PN	1	Requesting Physician		RequestingPhysician
(0032,1033)	LO	1	Requesting Service		RequestingService
(0032,1034)	SQ	1	Requesting Service Code Sequence		RequestingServiceCodeSequence
(0032,1040)	DA	1	Study Arrival Date	RET	StudyArrivalDate
(0032,1041)	TM	1	Study Arrival Time	RET	StudyArrivalTime
(0032,1050)	DA	1	Study Completion Date	RET	StudyCompletionDate
(0032,1051)	TM	1	Study Completion Time	RET	StudyCompletionTime
(0032,1055)	CS	1	Study Component Status ID	RET	StudyComponentStatusID
(0032,1060)	LO	1	Requested Procedure Description		RequestedProcedureDescription
(0032,1064)	SQ	1	Requested Procedure Code Sequence		RequestedProcedureCodeSequence
(0032,1065)	SQ	1	Requested Laterality Code Sequence		RequestedLateralityCodeSequence
(0032,1066)	UT	1	Reason for Visit		ReasonForVisit
(0032,1067)	SQ	1	Reason for Visit Code Sequence		ReasonForVisitCodeSequence
(0032,1070)	LO	1	Requested Contrast Agent		RequestedContrastAgent
(0032,4000)	LT	1	Study Comments	RET	StudyComments
(0034,0001)	SQ	1	Flow Identifier Sequence		FlowIdentifierSequence
(0034,0002)	OB	1	Flow Identifier		FlowIdentifier
(0034,0003)	UI	1	Flow Transfer Syntax UID		FlowTransferSyntaxUID
(0034,0004)	UL	1	Flow RTP Sampling Rate		FlowRTPSamplingRate
(0034,0005)	OB	1	Source Identifier		SourceIdentifier
(0034,0007)	OB	1	Frame Origin Timestamp		FrameOriginTimestamp
(0034,0008)	CS	1	Includes Imaging Subject		IncludesImagingSubject
(0034,0009)	SQ	1	Frame Usefulness Group Sequence		FrameUsefulnessGroupSequence
(0034,000A)	SQ	1	Real-Time Bulk Data Flow Sequence		RealTimeBulkDataFlowSequence
(0034,000B)	SQ	1	Camera Position Group Sequence		CameraPositionGroupSequence
(0034,000C)	CS	1	Includes Information		IncludesInformation
(0034,000D)	SQ	1	Time of Frame Group Sequence		TimeOfFrameGroupSequence
(0038,0004)	SQ	1	Referenced Patient Alias Sequence	RET	ReferencedPatientAliasSequence
(0038,0008)	CS	1	Visit Status ID		VisitStatusID
(0038,0010)	LO	1	Admission ID		AdmissionID
(0038,0011)	LO	1	Issuer of Admission ID	RET	IssuerOfAdmissionID
(0038,0014)	SQ	1	Issuer of Admission ID Sequence		IssuerOfAdmissionIDSequence
(0038,0016)	LO	1	Route of Admissions		RouteOfAdmissions
(0038,001A)	DA	1	Scheduled Admission Date	RET	ScheduledAdmissionDate
(0038,001B)	TM	1	Scheduled Admission Time	RET	ScheduledAdmissionTime
(0038,001C)	DA	1	Scheduled Discharge Date	RET	ScheduledDischargeDate
(0038,001D)	TM	1	Scheduled Discharge Time	RET	ScheduledDischargeTime
(0038,001E)	LO	1	Scheduled Patient Institution Residence	RET	ScheduledPatientInstitutionResidence
(0038,0020)	DA	1	Admitting Date		AdmittingDate
(0038,0021)	TM	1	Admitting Time		AdmittingTime
(0038,0030)	DA	1	Discharge Date	RET	DischargeDate
(0038,0032)	TM	1	Discharge Time	RET	DischargeTime
(0038,0040)	LO	1	Discharge Diagnosis Description	RET	DischargeDiagnosisDescription
(0038,0044)	SQ	1	Discharge Diagnosis Code Sequence	RET	DischargeDiagnosisCodeSequence
(0038,0050)	LO	1	Special Needs		SpecialNeeds
(0038,0060)	LO	1	Service Episode ID		ServiceEpisodeID
(0038,0061)	LO	1	Issuer of Service Episode ID	RET	IssuerOfServiceEpisodeID
(0038,0062)	LO	1	Service Episode Description		ServiceEpisodeDescription
(0038,0064)	SQ	1	Issuer of Service Episode ID Sequence		IssuerOfServiceEpisodeIDSequence
(0038,0100)	SQ	1	Pertinent Documents Sequence		PertinentDocumentsSequence
(0038,0101)	SQ	1	Pertinent Resources Sequence		PertinentResourcesSequence
(0038,0102)	LO	1	Resource Description		ResourceDescription
(0038,0300)	LO	1	Current Patient Location		CurrentPatientLocation
(0038,0400)	LO	1	Patient's Institution Residence		PatientInstitutionResidence
(0038,0500)	LO	1	Patient State		PatientState
(0038,0502)	SQ	1	Patient Clinical Trial Participation Sequence		PatientClinicalTrialParticipationSequence
(0038,4000)	LT	1	Visit Comments		VisitComments
(003A,0004)	CS	1	Waveform Originality		WaveformOriginality
(003A,0005)	US	1	Number of Waveform Channels		NumberOfWaveformChannels
(003A,0010)	UL	1	Number of Waveform Samples		NumberOfWaveformSamples
(003A,001A)	DS	1	Sampling Frequency		SamplingFrequency
(003A,0020)	SH	1	Multiplex Group Label		MultiplexGroupLabel
(003A,0200)	SQ	1	Channel Definition Sequence		ChannelDefinitionSequence
(003A,0202)	IS	1	Waveform Channel Number		WaveformChannelNumber
(003A,0203)	SH	1	Channel Label		ChannelLabel
(003A,0205)	CS	1-n	Channel Status		ChannelStatus
(003A,0208)	SQ	1	Channel Source Sequence		ChannelSourceSequence
(003A,0209)	SQ	1	Channel Source Modifiers Sequence		ChannelSourceModifiersSequence
(003A,020A)	SQ	1	Source Waveform Sequence		SourceWaveformSequence
(003A,020C)	LO	1	Channel Derivation Description		ChannelDerivationDescription
(003A,0210)	DS	1	Channel Sensitivity		ChannelSensitivity
(003A,0211)	SQ	1	Channel Sensitivity Units Sequence		ChannelSensitivityUnitsSequence
(003A,0212)	DS	1	Channel Sensitivity Correction Factor		ChannelSensitivityCorrectionFactor
(003A,0213)	DS	1	Channel Baseline		ChannelBaseline
(003A,0214)	DS	1	Channel Time Skew		ChannelTimeSkew
(003A,0215)	DS	1	Channel Sample Skew		ChannelSampleSkew
(003A,0218)	DS	1	Channel Offset		ChannelOffset
(003A,021A)	US	1	Waveform Bits Stored		WaveformBitsStored
(003A,0220)	DS	1	Filter Low Frequency		FilterLowFrequency
(003A,0221)	DS	1	Filter High Frequency		FilterHighFrequency
(003A,0222)	DS	1	Notch Filter Frequency		NotchFilterFrequency
(003A,0223)	DS	1	Notch Filter Bandwidth		NotchFilterBandwidth
(003A,0230)	FL	1	Waveform Data Display Scale		WaveformDataDisplayScale
(003A,0231)	US	3	Waveform Display Background CIELab Value		WaveformDisplayBackgroundCIELabValue
(003A,0240)	SQ	1	Waveform Presentation Group Sequence		WaveformPresentationGroupSequence
(003A,0241)	US	1	Presentation Group Number		PresentationGroupNumber
(003A,0242)	SQ	1	Channel Display Sequence		ChannelDisplaySequence
(003A,0244)	US	3	Channel Recommended Display CIELab Value		ChannelRecommendedDisplayCIELabValue
(003A,0245)	FL	1	Channel Position		ChannelPosition
(003A,0246)	CS	1	Display Shading Flag		DisplayShadingFlag
(003A,0247)	FL	1	Fractional Channel Display Scale		FractionalChannelDisplayScale
(003A,0248)	FL	1	Absolute Channel Display Scale		AbsoluteChannelDisplayScale
(003A,0300)	SQ	1	Multiplexed Audio Channels Description Code Sequence		MultiplexedAudioChannelsDescriptionCodeSequence
(003A,0301)	IS	1	Channel Identification Code		ChannelIdentificationCode
(003A,0302)	CS	1	Channel Mode		ChannelMode
(003A,0310)	UI	1	Multiplex Group UID		MultiplexGroupUID
(003A,0311)	DS	1	Powerline Frequency		PowerlineFrequency
(003A,0312)	SQ	1	Channel Impedance Sequence		ChannelImpedanceSequence
(003A,0313)	DS	1	Impedance Value		ImpedanceValue
(003A,0314)	DT	1	Impedance Measurement DateTime		ImpedanceMeasurementDateTime
(003A,0315)	DS	1	Impedance Measurement Frequency		ImpedanceMeasurementFrequency
(003A,0316)	CS	1	Impedance Measurement Current Type		ImpedanceMeasurementCurrentType
(003A,0317)	CS	1	Waveform Amplifier Type		WaveformAmplifierType
(003A,0318)	SQ	1	Filter Low Frequency Characteristics Sequence		FilterLowFrequencyCharacteristicsSequence
(003A,0319)	SQ	1	Filter High Frequency Characteristics Sequence		FilterHighFrequencyCharacteristicsSequence
(003A,0320)	SQ	1	Summarized Filter Lookup Table Sequence		SummarizedFilterLookupTable
(003A,0321)	SQ	1	Notch Filter Characteristics Sequence		NotchFilterCharacteristicsSequence
(003A,0322)	CS	1	Waveform Filter Type		WaveformFilterType
(003A,0323)	SQ	1	Analog Filter Characteristics Sequence		AnalogFilterCharacteristicsSequence
(003A,0324)	DS	1	Analog Filter Roll Off		AnalogFilterRollOff
(003A,0325)	SQ	1	Analog Filter Type Code Sequence		AnalogFilterType
(003A,0326)	SQ	1	Digital Filter Characteristics Sequence		DigitalFilterCharacteristicsSequence
(003A,0327)	IS	1	Digital Filter Order		DigitalFilterOrder
(003A,0328)	SQ	1	Digital Filter Type Code Sequence		DigitalFilterTypeCodeSequence
(003A,0329)	ST	1	Waveform Filter Description		WaveformFilterDescription
(003A,032A)	SQ	1	Filter Lookup Table Sequence		FilterLookupTableSequence
(003A,032B)	ST	1	Filter Lookup Table Description		FilterLookupTableDescription
(003A,032C)	SQ	1	Frequency Encoding Code Sequence		FrequencyEncodingCodeSequence
(003A,032D)	SQ	1	Magnitude Encoding Code Sequence		MagnitudeEncodingCodeSequence
(003A,032E)	OD	1	Filter Lookup Table Data		FilterLookupTableData
(0040,0001)	AE	1-n	Scheduled Station AE Title		ScheduledStationAETitle
(0040,0002)	DA	1	Scheduled Procedure Step Start Date		ScheduledProcedureStepStartDate
(0040,0003)	TM	1	Scheduled Procedure Step Start Time		ScheduledProcedureStepStartTime
(0040,0004)	DA	1	Scheduled Procedure Step End Date		ScheduledProcedureStepEndDate
(0040,0005)	TM	1	Scheduled Procedure Step End Time		ScheduledProcedureStepEndTime
(0040,0006)	PN	1	Scheduled Performing Physician's Name		ScheduledPerformingPhysicianName
(0040,0007)	LO	1	Scheduled Procedure Step Description		ScheduledProcedureStepDescription
(0040,0008)	SQ	1	Scheduled Protocol Code Sequence		ScheduledProtocolCodeSequence
(0040,0009)	SH	1	Scheduled Procedure Step ID		ScheduledProcedureStepID
(0040,000A)	SQ	1	Stage Code Sequence		StageCodeSequence
(0040,000B)	SQ	1	Scheduled Performing Physician Identification Sequence		ScheduledPerformingPhysicianIdentificationSequence
(0040,0010)	SH	1-n	Scheduled Station Name		ScheduledStationName
(0040,0011)	SH	1	Scheduled Procedure Step Location		ScheduledProcedureStepLocation
(0040,0012)	LO	1	Pre-Medication		PreMedication
(0040,0020)	CS	1	Scheduled Procedure Step Status		ScheduledProcedureStepStatus
(0040,0026)	SQ	1	Order Placer Identifier Sequence		OrderPlacerIdentifierSequence
(0040,0027)	SQ	1	Order Filler Identifier Sequence		OrderFillerIdentifierSequence
(0040,0031)	UT	1	Local Namespace Entity ID		LocalNamespaceEntityID
(0040,0032)	UT	1	Universal Entity ID		UniversalEntityID
(0040,0033)	CS	1	Universal Entity ID Type		UniversalEntityIDType
(0040,0035)	CS	1	Identifier Type Code		IdentifierTypeCode
(0040,0036)	SQ	1	Assigning Facility Sequence		AssigningFacilitySequence
(0040,0039)	SQ	1	Assigning Jurisdiction Code Sequence		AssigningJurisdictionCodeSequence
(0040,003A)	SQ	1	Assigning Agency or Department Code Sequence		AssigningAgencyOrDepartmentCodeSequence
(0040,0100)	SQ	1	Scheduled Procedure Step Sequence		ScheduledProcedureStepSequence
(0040,0220)	SQ	1	Referenced Non-Image Composite SOP Instance Sequence		ReferencedNonImageCompositeSOPInstanceSequence
(0040,0241)	AE	1	Performed Station AE Title		PerformedStationAETitle
(0040,0242)	SH	1	Performed Station Name		PerformedStationName
(0040,0243)	SH	1	Performed Location		PerformedLocation
(0040,0244)	DA	1	Performed Procedure Step Start Date		PerformedProcedureStepStartDate
(0040,0245)	TM	1	Performed Procedure Step Start Time		PerformedProcedureStepStartTime
(0040,0250)	DA	1	Performed Procedure Step End Date		PerformedProcedureStepEndDate
(0040,0251)	TM	1	Performed Procedure Step End Time		PerformedProcedureStepEndTime
(0040,0252)	CS	1	Performed Procedure Step Status		PerformedProcedureStepStatus
(0040,0253)	SH	1	Performed Procedure Step ID		PerformedProcedureStepID
(0040,0254)	LO	1	Performed Procedure Step Description		PerformedProcedureStepDescription
(0040,0255)	LO	1	Performed Procedure Type Description		PerformedProcedureTypeDescription
(0040,0260)	SQ	1	Performed Protocol Code Sequence		PerformedProtocolCodeSequence
(0040,0261)	CS	1	Performed Protocol Type		PerformedProtocolType
(0040,0270)	SQ	1	Scheduled Step Attributes Sequence		ScheduledStepAttributesSequence
(0040,0275)	SQ	1	Request Attributes Sequence		RequestAttributesSequence
(0040,0280)	ST	1	Comments on the Performed Procedure Step		CommentsOnThePerformedProcedureStep
(0040,0281)	SQ	1	Performed Procedure Step Discontinuation Reason Code Sequence		PerformedProcedureStepDiscontinuationReasonCodeSequence
(0040,0293)	SQ	1	Quantity Sequence		QuantitySequence
(0040,0294)	DS	1	Quantity		Quantity
(0040,0295)	SQ	1	Measuring Units Sequence		MeasuringUnitsSequence
(0040,0296)	SQ	1	Billing Item Sequence		BillingItemSequence
(0040,0300)	US	1	Total Time of Fluoroscopy	RET	TotalTimeOfFluoroscopy
(0040,0301)	US	1	Total Number of Exposures	RET	TotalNumberOfExposures
(0040,0302)	US	1	Entrance Dose		EntranceDose
(0040,0303)	US	1-2	Exposed Area		ExposedArea
(0040,0306)	DS	1	Distance Source to Entrance		DistanceSourceToEntrance
(0040,0307)	DS	1	Distance Source to Support	RET	DistanceSourceToSupport
(0040,030E)	SQ	1	Exposure Dose Sequence	RET	ExposureDoseSequence
(0040,0310)	ST	1	Comments on Radiation Dose		CommentsOnRadiationDose
(0040,0312)	DS	1	X-Ray Output		XRayOutput
(0040,0314)	DS	1	Half Value Layer		HalfValueLayer
(0040,0316)	DS	1	Organ Dose		OrganDose
(0040,0318)	CS	1	Organ Exposed		OrganExposed
(0040,0320)	SQ	1	Billing Procedure Step Sequence		BillingProcedureStepSequence
(0040,0321)	SQ	1	Film Consumption Sequence		FilmConsumptionSequence
(0040,0324)	SQ	1	Billing Supplies and Devices Sequence		BillingSuppliesAndDevicesSequence
(0040,0330)	SQ	1	Referenced Procedure Step Sequence	RET	ReferencedProcedureStepSequence
(0040,0340)	SQ	1	Performed Series Sequence		PerformedSeriesSequence
(0040,0400)	LT	1	Comments on the Scheduled Procedure Step		CommentsOnTheScheduledProcedureStep
(0040,0440)	SQ	1	Protocol Context Sequence		ProtocolContextSequence
(0040,0441)	SQ	1	Content Item Modifier Sequence		ContentItemModifierSequence
(0040,0500)	SQ	1	Scheduled Specimen Sequence		ScheduledSpecimenSequence
(0040,050A)	LO	1	Specimen Accession Number	RET	SpecimenAccessionNumber
(0040,0512)	LO	1	Container Identifier		ContainerIdentifier
(0040,0513)	SQ	1	Issuer of the Container Identifier Sequence		IssuerOfTheContainerIdentifierSequence
(0040,0515)	SQ	1	Alternate Container Identifier Sequence		AlternateContainerIdentifierSequence
(0040,0518)	SQ	1	Container Type Code Sequence		ContainerTypeCodeSequence
(0040,051A)	LO	1	Container Description		ContainerDescription
(0040,0520)	SQ	1	Container Component Sequence		ContainerComponentSequence
(0040,0550)	SQ	1	Specimen Sequence	RET	SpecimenSequence
(0040,0551)	LO	1	Specimen Identifier		SpecimenIdentifier
(0040,0552)	SQ	1	Specimen Description Sequence (Trial)	RET	SpecimenDescriptionSequenceTrial
(0040,0553)	ST	1	Specimen Description (Trial)	RET	SpecimenDescriptionTrial
(0040,0554)	UI	1	Specimen UID		SpecimenUID
(0040,0555)	SQ	1	Acquisition Context Sequence		AcquisitionContextSequence
(0040,0556)	ST	1	Acquisition Context Description		AcquisitionContextDescription
(0040,0560)	SQ	1	Specimen Description Sequence		SpecimenDescriptionSequence
(0040,0562)	SQ	1	Issuer of the Specimen Identifier Sequence		IssuerOfTheSpecimenIdentifierSequence
(0040,059A)	SQ	1	Specimen Type Code Sequence		SpecimenTypeCodeSequence
(0040,0600)	LO	1	Specimen Short Description		SpecimenShortDescription
(0040,0602)	UT	1	Specimen Detailed Description		SpecimenDetailedDescription
(0040,0610)	SQ	1	Specimen Preparation Sequence		SpecimenPreparationSequence
(0040,0612)	SQ	1	Specimen Preparation Step Content Item Sequence		SpecimenPreparationStepContentItemSequence
(0040,0620)	SQ	1	Specimen Localization Content Item Sequence		SpecimenLocalizationContentItemSequence
(0040,06FA)	LO	1	Slide Identifier	RET	SlideIdentifier
(0040,0710)	SQ	1	Whole Slide Microscopy Image Frame Type Sequence		WholeSlideMicroscopyImageFrameTypeSequence
(0040,071A)	SQ	1	Image Center Point Coordinates Sequence		ImageCenterPointCoordinatesSequence
(0040,072A)	DS	1	X Offset in Slide Coordinate System		XOffsetInSlideCoordinateSystem
(0040,073A)	DS	1	Y Offset in Slide Coordinate System		YOffsetInSlideCoordinateSystem
(0040,074A)	DS	1	Z Offset in Slide Coordinate System		ZOffsetInSlideCoordinateSystem
(0040,08D8)	SQ	1	Pixel Spacing Sequence	RET	PixelSpacingSequence
(0040,08DA)	SQ	1	Coordinate System Axis Code Sequence	RET	CoordinateSystemAxisCodeSequence
(0040,08EA)	SQ	1	Measurement Units Code Sequence		MeasurementUnitsCodeSequence
(0040,09F8)	SQ	1	Vital Stain Code Sequence (Trial)	RET	VitalStainCodeSequenceTrial
(0040,1001)	SH	1	Requested Procedure ID		RequestedProcedureID
(0040,1002)	LO	1	Reason for the Requested Procedure		ReasonForTheRequestedProcedure
(0040,1003)	SH	1	Requested Procedure Priority		RequestedProcedurePriority
(0040,1004)	LO	1	Patient Transport Arrangements		PatientTransportArrangements
(0040,1005)	LO	1	Requested Procedure Location		RequestedProcedureLocation
(0040,1006)	SH	1	Placer Order Number / Procedure	RET	PlacerOrderNumberProcedure
(0040,1007)	SH	1	Filler Order Number / Procedure	RET	FillerOrderNumberProcedure
(0040,1008)	LO	1	Confidentiality Code		ConfidentialityCode
(0040,1009)	SH	1	Reporting Priority		ReportingPriority
(0040,100A)	SQ	1	Reason for Requested Procedure Code Sequence		ReasonForRequestedProcedureCodeSequence
(0040,1010)	PN	1-n	Names of Intended Recipients of Results		NamesOfIntendedRecipientsOfResults
(0040,1011)	SQ	1	Intended Recipients of Results Identification Sequence		IntendedRecipientsOfResultsIdentificationSequence
(0040,1012)	SQ	1	Reason For Performed Procedure Code Sequence		ReasonForPerformedProcedureCodeSequence
(0040,1060)	LO	1	Requested Procedure Description (Trial)	RET	RequestedProcedureDescriptionTrial
(0040,1101)	SQ	1	Person Identification Code Sequence		PersonIdentificationCodeSequence
(0040,1102)	ST	1	Person's Address		PersonAddress
(0040,1103)	LO	1-n	Person's Telephone Numbers		PersonTelephoneNumbers
(0040,1104)	LT	1	Person's Telecom Information		PersonTelecomInformation
(0040,1400)	LT	1	Requested Procedure Comments		RequestedProcedureComments
(0040,2001)	LO	1	Reason for the Imaging Service Request	RET	ReasonForTheImagingServiceRequest
(0040,2004)	DA	1	Issue Date of Imaging Service Request		IssueDateOfImagingServiceRequest
(0040,2005)	TM	1	Issue Time of Imaging Service Request		IssueTimeOfImagingServiceRequest
(0040,2006)	SH	1	Placer Order Number / Imaging Service Request (Retired)	RET	PlacerOrderNumberImagingServiceRequestRetired
(0040,2007)	SH	1	Filler Order Number / Imaging Service Request (Retired)	RET	FillerOrderNumberImagingServiceRequestRetired
(0040,2008)	PN	1	Order Entered By		OrderEnteredBy
(0040,2009)	SH	1	Order Enterer's Location		OrderEntererLocation
(0040,2010)	SH	1	Order Callback Phone Number		OrderCallbackPhoneNumber
(0040,2011)	LT	1	Order Callback Telecom Information		OrderCallbackTelecomInformation
(0040,2016)	LO	1	Placer Order Number / Imaging Service Request		PlacerOrderNumberImagingServiceRequest
(0040,2017)	LO	1	Filler Order Number / Imaging Service Request		FillerOrderNumberImagingServiceRequest
(0040,2400)	LT	1	Imaging Service Request Comments		ImagingServiceRequestComments
(0040,3001)	LO	1	Confidentiality Constraint on Patient Data Description		ConfidentialityConstraintOnPatientDataDescription
(0040,4001)	CS	1	General Purpose Scheduled Procedure Step Status	RET	GeneralPurposeScheduledProcedureStepStatus
(0040,4002)	CS	1	General Purpose Performed Procedure Step Status	RET	GeneralPurposePerformedProcedureStepStatus
(0040,4003)	CS	1	General Purpose Scheduled Procedure Step Priority	RET	GeneralPurposeScheduledProcedureStepPriority
(0040,4004)	SQ	1	Scheduled Processing Applications Code Sequence	RET	ScheduledProcessingApplicationsCodeSequence
(0040,4005)	DT	1	Scheduled Procedure Step Start DateTime		ScheduledProcedureStepStartDateTime
(0040,4006)	CS	1	Multiple Copies Flag	RET	MultipleCopiesFlag
(0040,4007)	SQ	1	Performed Processing Applications Code Sequence	RET	PerformedProcessingApplicationsCodeSequence
(0040,4008)	DT	1	Scheduled Procedure Step Expiration DateTime		ScheduledProcedureStepExpirationDateTime
(0040,4009)	SQ	1	Human Performer Code Sequence		HumanPerformerCodeSequence
(0040,4010)	DT	1	Scheduled Procedure Step Modification DateTime		ScheduledProcedureStepModificationDateTime
(0040,4011)	DT	1	Expected Completion DateTime		ExpectedCompletionDateTime
(0040,4015)	SQ	1	Resulting General Purpose Performed Procedure Steps Sequence	RET	ResultingGeneralPurposePerformedProcedureStepsSequence
(0040,4016)	SQ	1	Referenced General Purpose Scheduled Procedure Step Sequence	RET	ReferencedGeneralPurposeScheduledProcedureStepSequence
(0040,4018)	SQ	1	Scheduled Workitem Code Sequence		ScheduledWorkitemCodeSequence
(0040,4019)	SQ	1	Performed Workitem Code Sequence		PerformedWorkitemCodeSequence
(0040,4020)	CS	1	Input Availability Flag	RET	InputAvailabilityFlag
(0040,4021)	SQ	1	Input Information Sequence		InputInformationSequence
(0040,4022)	SQ	1	Relevant Information Sequence	RET	RelevantInformationSequence
(0040,4023)	UI	1	Referenced General Purpose Scheduled Procedure Step Transaction UID	RET	ReferencedGeneralPurposeScheduledProcedureStepTransactionUID
(0040,4025)	SQ	1	Scheduled Station Name Code Sequence		ScheduledStationNameCodeSequence
(0040,4026)	SQ	1	Scheduled Station Class Code Sequence		ScheduledStationClassCodeSequence
(0040,4027)	SQ	1	Scheduled Station Geographic Location Code Sequence		ScheduledStationGeographicLocationCodeSequence
(0040,4028)	SQ	1	Performed Station Name Code Sequence		PerformedStationNameCodeSequence
(0040,4029)	SQ	1	Performed Station Class Code Sequence		PerformedStationClassCodeSequence
(0040,4030)	SQ	1	Performed Station Geographic Location Code Sequence		PerformedStationGeographicLocationCodeSequence
(0040,4031)	SQ	1	Requested Subsequent Workitem Code Sequence	RET	RequestedSubsequentWorkitemCodeSequence
(0040,4032)	SQ	1	Non-DICOM Output Code Sequence	RET	NonDICOMOutputCodeSequence
(0040,4033)	SQ	1	Output Information Sequence		OutputInformationSequence
(0040,4034)	SQ	1	Scheduled Human Performers Sequence		ScheduledHumanPerformersSequence
(0040,4035)	SQ	1	Actual Human Performers Sequence		ActualHumanPerformersSequence
(0040,4036)	LO	1	Human Performer's Organization		HumanPerformerOrganization
(0040,4037)	PN	1	Human Performer's Name		HumanPerformerName
(0040,4040)	CS	1	Raw Data Handling		RawDataHandling
(0040,4041)	CS	1	Input Readiness State		InputReadinessState
(0040,4050)	DT	1	Performed Procedure Step Start DateTime		PerformedProcedureStepStartDateTime
(0040,4051)	DT	1	Performed Procedure Step End DateTime		PerformedProcedureStepEndDateTime
(0040,4052)	DT	1	Procedure Step Cancellation DateTime		ProcedureStepCancellationDateTime
(0040,4070)	SQ	1	Output Destination Sequence		OutputDestinationSequence
(0040,4071)	SQ	1	DICOM Storage Sequence		DICOMStorageSequence
(0040,4072)	SQ	1	STOW-RS Storage Sequence		STOWRSStorageSequence
(0040,4073)	UR	1	Storage URL		StorageURL
(0040,4074)	SQ	1	XDS Storage Sequence		XDSStorageSequence
(0040,8302)	DS	1	Entrance Dose in mGy		EntranceDoseInmGy
(0040,8303)	CS	1	Entrance Dose Derivation		EntranceDoseDerivation
(0040,9092)	SQ	1	Parametric Map Frame Type Sequence		ParametricMapFrameTypeSequence
(0040,9094)	SQ	1	Referenced Image Real World Value Mapping Sequence		ReferencedImageRealWorldValueMappingSequence
(0040,9096)	SQ	1	Real World Value Mapping Sequence		RealWorldValueMappingSequence
(0040,9098)	SQ	1	Pixel Value Mapping Code Sequence		PixelValueMappingCodeSequence
(0040,9210)	SH	1	LUT Label		LUTLabel
(0040,9211)	US or SS	1	Real World Value Last Value Mapped		RealWorldValueLastValueMapped
(0040,9212)	FD	1-n	Real World Value LUT Data		RealWorldValueLUTData
(0040,9213)	FD	1	Double Float Real World Value Last Value Mapped		DoubleFloatRealWorldValueLastValueMapped
(0040,9214)	FD	1	Double Float Real World Value First Value Mapped		DoubleFloatRealWorldValueFirstValueMapped
(0040,9216)	US or SS	1	Real World Value First Value Mapped		RealWorldValueFirstValueMapped
(0040,9220)	SQ	1	Quantity Definition Sequence		QuantityDefinitionSequence
(0040,9224)	FD	1	Real World Value Intercept		RealWorldValueIntercept
(0040,9225)	FD	1	Real World Value Slope		RealWorldValueSlope
(0040,A007)	CS	1	Findings Flag (Trial)	RET	FindingsFlagTrial
(0040,A010)	CS	1	Relationship Type		RelationshipType
(0040,A020)	SQ	1	Findings Sequence (Trial)	RET	FindingsSequenceTrial
(0040,A021)	UI	1	Findings Group UID (Trial)	RET	FindingsGroupUIDTrial
(0040,A022)	UI	1	Referenced Findings Group UID (Trial)	RET	ReferencedFindingsGroupUIDTrial
(0040,A023)	DA	1	Findings Group Recording Date (Trial)	RET	FindingsGroupRecordingDateTrial
(0040,A024)	TM	1	Findings Group Recording Time (Trial)	RET	FindingsGroupRecordingTimeTrial
(0040,A026)	SQ	1	Findings Source Category Code Sequence (Trial)	RET	FindingsSourceCategoryCodeSequenceTrial
(0040,A027)	LO	1	Verifying Organization		VerifyingOrganization
(0040,A028)	SQ	1	Documenting Organization Identifier Code Sequence (Trial)	RET	DocumentingOrganizationIdentifierCodeSequenceTrial
(0040,A030)	DT	1	Verification DateTime		VerificationDateTime
(0040,A032)	DT	1	Observation DateTime		ObservationDateTime
(0040,A033)	DT	1	Observation Start DateTime		ObservationStartDateTime
(0040,A040)	CS	1	Value Type		ValueType
(0040,A043)	SQ	1	Concept Name Code Sequence		ConceptNameCodeSequence
(0040,A047)	LO	1	Measurement Precision Description (Trial)	RET	MeasurementPrecisionDescriptionTrial
(0040,A050)	CS	1	Continuity Of Content		ContinuityOfContent
(0040,A057)	CS	1-n	Urgency or Priority Alerts (Trial)	RET	UrgencyOrPriorityAlertsTrial
(0040,A060)	LO	1	Sequencing Indicator (Trial)	RET	SequencingIndicatorTrial
(0040,A066)	SQ	1	Document Identifier Code Sequence (Trial)	RET	DocumentIdentifierCodeSequenceTrial
(0040,A067)	PN	1	Document Author (Trial)	RET	DocumentAuthorTrial
(0040,A068)	SQ	1	Document Author Identifier Code Sequence (Trial)	RET	DocumentAuthorIdentifierCodeSequenceTrial
(0040,A070)	SQ	1	Identifier Code Sequence (Trial)	RET	IdentifierCodeSequenceTrial
(0040,A073)	SQ	1	Verifying Observer Sequence		VerifyingObserverSequence
(0040,A074)	OB	1	Object Binary Identifier (Trial)	RET	ObjectBinaryIdentifierTrial
(0040,A075)	PN	1	Verifying Observer Name		VerifyingObserverName
(0040,A076)	SQ	1	Documenting Observer Identifier Code Sequence (Trial)	RET	DocumentingObserverIdentifierCodeSequenceTrial
(0040,A078)	SQ	1	Author Observer Sequence		AuthorObserverSequence
(0040,A07A)	SQ	1	Participant Sequence		ParticipantSequence
(0040,A07C)	SQ	1	Custodial Organization Sequence		CustodialOrganizationSequence
(0040,A080)	CS	1	Participation Type		ParticipationType
(0040,A082)	DT	1	Participation DateTime		ParticipationDateTime
(0040,A084)	CS	1	Observer Type		ObserverType
(0040,A085)	SQ	1	Procedure Identifier Code Sequence (Trial)	RET	ProcedureIdentifierCodeSequenceTrial
(0040,A088)	SQ	1	Verifying Observer Identification Code Sequence		VerifyingObserverIdentificationCodeSequence
(0040,A089)	OB	1	Object Directory Binary Identifier (Trial)	RET	ObjectDirectoryBinaryIdentifierTrial
(0040,A090)	SQ	1	Equivalent CDA Document Sequence	RET	EquivalentCDADocumentSequence
(0040,A0B0)	US	2-2n	Referenced Waveform Channels		ReferencedWaveformChannels
(0040,A110)	DA	1	Date of Document or Verbal Transaction (Trial)	RET	DateOfDocumentOrVerbalTransactionTrial
(0040,A112)	TM	1	Time of Document Creation or Verbal Transaction (Trial)	RET	TimeOfDocumentCreationOrVerbalTransactionTrial
(0040,A120)	DT	1	DateTime		DateTime
(0040,A121)	DA	1	Date		Date
(0040,A122)	TM	1	Time		Time
(0040,A123)	PN	1	Person Name		PersonName
(0040,A124)	UI	1	UID		UID
(0040,A125)	CS	2	Report Status ID (Trial)	RET	ReportStatusIDTrial
(0040,A130)	CS	1	Temporal Range Type		TemporalRangeType
(0040,A132)	UL	1-n	Referenced Sample Positions		ReferencedSamplePositions
(0040,A136)	US	1-n	Referenced Frame Numbers	RET	ReferencedFrameNumbers
(0040,A138)	DS	1-n	Referenced Time Offsets		ReferencedTimeOffsets
(0040,A13A)	DT	1-n	Referenced DateTime		ReferencedDateTime
(0040,A160)	UT	1	Text Value		TextValue
(0040,A161)	FD	1-n	Floating Point Value		FloatingPointValue
(0040,A162)	SL	1-n	Rational Numerator Value		RationalNumeratorValue
(0040,A163)	UL	1-n	Rational Denominator Value		RationalDenominatorValue
(0040,A167)	SQ	1	Observation Category Code Sequence (Trial)	RET	ObservationCategoryCodeSequenceTrial
(0040,A168)	SQ	1	Concept Code Sequence		ConceptCodeSequence
(0040,A16A)	ST	1	Bibliographic Citation (Trial)	RET	BibliographicCitationTrial
(0040,A170)	SQ	1	Purpose of Reference Code Sequence		PurposeOfReferenceCodeSequence
(0040,A171)	UI	1	Observation UID		ObservationUID
(0040,A172)	UI	1	Referenced Observation UID (Trial)	RET	ReferencedObservationUIDTrial
(0040,A173)	CS	1	Referenced Observation Class (Trial)	RET	ReferencedObservationClassTrial
(0040,A174)	CS	1	Referenced Object Observation Class (Trial)	RET	ReferencedObjectObservationClassTrial
(0040,A180)	US	1	Annotation Group Number		AnnotationGroupNumber
(0040,A192)	DA	1	Observation Date (Trial)	RET	ObservationDateTrial
(0040,A193)	TM	1	Observation Time (Trial)	RET	ObservationTimeTrial
(0040,A194)	CS	1	Measurement Automation (Trial)	RET	MeasurementAutomationTrial
(0040,A195)	SQ	1	Modifier Code Sequence		ModifierCodeSequence
(0040,A224)	ST	1	Identification Description (Trial)	RET	IdentificationDescriptionTrial
(0040,A290)	CS	1	Coordinates Set Geometric Type (Trial)	RET	CoordinatesSetGeometricTypeTrial
(0040,A296)	SQ	1	Algorithm Code Sequence (Trial)	RET	AlgorithmCodeSequenceTrial
(0040,A297)	ST	1	Algorithm Description (Trial)	RET	AlgorithmDescriptionTrial
(0040,A29A)	SL	2-2n	Pixel Coordinates Set (Trial)	RET	PixelCoordinatesSetTrial
(0040,A300)	SQ	1	Measured Value Sequence		MeasuredValueSequence
(0040,A301)	SQ	1	Numeric Value Qualifier Code Sequence		NumericValueQualifierCodeSequence
(0040,A307)	PN	1	Current Observer (Trial)	RET	CurrentObserverTrial
(0040,A30A)	DS	1-n	Numeric Value		NumericValue
(0040,A313)	SQ	1	Referenced Accession Sequence (Trial)	RET	ReferencedAccessionSequenceTrial
(0040,A33A)	ST	1	Report Status Comment (Trial)	RET	ReportStatusCommentTrial
(0040,A340)	SQ	1	Procedure Context Sequence (Trial)	RET	ProcedureContextSequenceTrial
(0040,A352)	PN	1	Verbal Source (Trial)	RET	VerbalSourceTrial
(0040,A353)	ST	1	Address (Trial)	RET	AddressTrial
(0040,A354)	LO	1	Telephone Number (Trial)	RET	TelephoneNumberTrial
(0040,A358)	SQ	1	Verbal Source Identifier Code Sequence (Trial)	RET	VerbalSourceIdentifierCodeSequenceTrial
(0040,A360)	SQ	1	Predecessor Documents Sequence		PredecessorDocumentsSequence
(0040,A370)	SQ	1	Referenced Request Sequence		ReferencedRequestSequence
(0040,A372)	SQ	1	Performed Procedure Code Sequence		PerformedProcedureCodeSequence
(0040,A375)	SQ	1	Current Requested Procedure Evidence Sequence		CurrentRequestedProcedureEvidenceSequence
(0040,A380)	SQ	1	Report Detail Sequence (Trial)	RET	ReportDetailSequenceTrial
(0040,A385)	SQ	1	Pertinent Other Evidence Sequence		PertinentOtherEvidenceSequence
(0040,A390)	SQ	1	HL7 Structured Document Reference Sequence		HL7StructuredDocumentReferenceSequence
(0040,A402)	UI	1	Observation Subject UID (Trial)	RET	ObservationSubjectUIDTrial
(0040,A403)	CS	1	Observation Subject Class (Trial)	RET	ObservationSubjectClassTrial
(0040,A404)	SQ	1	Observation Subject Type Code Sequence (Trial)	RET	ObservationSubjectTypeCodeSequenceTrial
(0040,A491)	CS	1	Completion Flag		CompletionFlag
(0040,A492)	LO	1	Completion Flag Description		CompletionFlagDescription
(0040,A493)	CS	1	Verification Flag		VerificationFlag
(0040,A494)	CS	1	Archive Requested		ArchiveRequested
(0040,A496)	CS	1	Preliminary Flag		PreliminaryFlag
(0040,A504)	SQ	1	Content Template Sequence		ContentTemplateSequence
(0040,A525)	SQ	1	Identical Documents Sequence		IdenticalDocumentsSequence
(0040,A600)	CS	1	Observation Subject Context Flag (Trial)	RET	ObservationSubjectContextFlagTrial
(0040,A601)	CS	1	Observer Context Flag (Trial)	RET	ObserverContextFlagTrial
(0040,A603)	CS	1	Procedure Context Flag (Trial)	RET	ProcedureContextFlagTrial
(0040,A730)	SQ	1	Content Sequence		ContentSequence
(0040,A731)	SQ	1	Relationship Sequence (Trial)	RET	RelationshipSequenceTrial
(0040,A732)	SQ	1	Relationship Type Code Sequence (Trial)	RET	RelationshipTypeCodeSequenceTrial
(0040,A744)	SQ	1	Language Code Sequence (Trial)	RET	LanguageCodeSequenceTrial
(0040,A801)	SQ	1	Tabulated Values Sequence		TabulatedValuesSequence
(0040,A802)	UL	1	Number of Table Rows		NumberOfTableRows
(0040,A803)	UL	1	Number of Table Columns		NumberOfTableColumns
(0040,A804)	UL	1	Table Row Number		TableRowNumber
(0040,A805)	UL	1	Table Column Number		TableColumnNumber
(0040,A806)	SQ	1	Table Row Definition Sequence		TableRowDefinitionSequence
(0040,A807)	SQ	1	Table Column Definition Sequence		TableColumnDefinitionSequence
(0040,A808)	SQ	1	Cell Values Sequence		CellValuesSequence
(0040,A992)	ST	1	Uniform Resource Locator (Trial)	RET	UniformResourceLocatorTrial
(0040,B020)	SQ	1	Waveform Annotation Sequence		WaveformAnnotationSequence
(0040,DB00)	CS	1	Template Identifier		TemplateIdentifier
(0040,DB06)	DT	1	Template Version	RET	TemplateVersion
(0040,DB07)	DT	1	Template Local Version	RET	TemplateLocalVersion
(0040,DB0B)	CS	1	Template Extension Flag	RET	TemplateExtensionFlag
(0040,DB0C)	UI	1	Template Extension Organization UID	RET	TemplateExtensionOrganizationUID
(0040,DB0D)	UI	1	Template Extension Creator UID	RET	TemplateExtensionCreatorUID
(0040,DB73)	UL	1-n	Referenced Content Item Identifier		ReferencedContentItemIdentifier
(0040,E001)	ST	1	HL7 Instance Identifier		HL7InstanceIdentifier
(0040,E004)	DT	1	HL7 Document Effective Time		HL7DocumentEffectiveTime
(0040,E006)	SQ	1	HL7 Document Type Code Sequence		HL7DocumentTypeCodeSequence
(0040,E008)	SQ	1	Document Class Code Sequence		DocumentClassCodeSequence
(0040,E010)	UR	1	Retrieve URI		RetrieveURI
(0040,E011)	UI	1	Retrieve Location UID		RetrieveLocationUID
(0040,E020)	CS	1	Type of Instances		TypeOfInstances
(0040,E021)	SQ	1	DICOM Retrieval Sequence		DICOMRetrievalSequence
(0040,E022)	SQ	1	DICOM Media Retrieval Sequence		DICOMMediaRetrievalSequence
(0040,E023)	SQ	1	WADO Retrieval Sequence		WADORetrievalSequence
(0040,E024)	SQ	1	XDS Retrieval Sequence		XDSRetrievalSequence
(0040,E025)	SQ	1	WADO-RS Retrieval Sequence		WADORSRetrievalSequence
(0040,E030)	UI	1	Repository Unique ID		RepositoryUniqueID
(0040,E031)	UI	1	Home Community ID		HomeCommunityID
(0042,0010)	ST	1	Document Title		DocumentTitle
(0042,0011)	OB	1	Encapsulated Document		EncapsulatedDocument
(0042,0012)	LO	1	MIME Type of Encapsulated Document		MIMETypeOfEncapsulatedDocument
(0042,0013)	SQ	1	Source Instance Sequence		SourceInstanceSequence
(0042,0014)	LO	1-n	List of MIME Types		ListOfMIMETypes
(0042,0015)	UL	1	Encapsulated Document Length		EncapsulatedDocumentLength
(0044,0001)	ST	1	Product Package Identifier		ProductPackageIdentifier
(0044,0002)	CS	1	Substance Administration Approval		SubstanceAdministrationApproval
(0044,0003)	LT	1	Approval Status Further Description		ApprovalStatusFurtherDescription
(0044,0004)	DT	1	Approval Status DateTime		ApprovalStatusDateTime
(0044,0007)	SQ	1	Product Type Code Sequence		ProductTypeCodeSequence
(0044,0008)	LO	1-n	Product Name		ProductName
(0044,0009)	LT	1	Product Description		ProductDescription
(0044,000A)	LO	1	Product Lot Identifier		ProductLotIdentifier
(0044,000B)	DT	1	Product Expiration DateTime		ProductExpirationDateTime
(0044,0010)	DT	1	Substance Administration DateTime		SubstanceAdministrationDateTime
(0044,0011)	LO	1	Substance Administration Notes		SubstanceAdministrationNotes
(0044,0012)	LO	1	Substance Administration Device ID		SubstanceAdministrationDeviceID
(0044,0013)	SQ	1	Product Parameter Sequence		ProductParameterSequence
(0044,0019)	SQ	1	Substance Administration Parameter Sequence		SubstanceAdministrationParameterSequence
(0044,0100)	SQ	1	Approval Sequence		ApprovalSequence
(0044,0101)	SQ	1	Assertion Code Sequence		AssertionCodeSequence
(0044,0102)	UI	1	Assertion UID		AssertionUID
(0044,0103)	SQ	1	Asserter Identification Sequence		AsserterIdentificationSequence
(0044,0104)	DT	1	Assertion DateTime		AssertionDateTime
(0044,0105)	DT	1	Assertion Expiration DateTime		AssertionExpirationDateTime
(0044,0106)	UT	1	Assertion Comments		AssertionComments
(0044,0107)	SQ	1	Related Assertion Sequence		RelatedAssertionSequence
(0044,0108)	UI	1	Referenced Assertion UID		ReferencedAssertionUID
(0044,0109)	SQ	1	Approval Subject Sequence		ApprovalSubjectSequence
(0044,010A)	SQ	1	Organizational Role Code Sequence		OrganizationalRoleCodeSequence
(0046,0012)	LO	1	Lens Description		LensDescription
(0046,0014)	SQ	1	Right Lens Sequence		RightLensSequence
(0046,0015)	SQ	1	Left Lens Sequence		LeftLensSequence
(0046,0016)	SQ	1	Unspecified Laterality Lens Sequence		UnspecifiedLateralityLensSequence
(0046,0018)	SQ	1	Cylinder Sequence		CylinderSequence
(0046,0028)	SQ	1	Prism Sequence		PrismSequence
(0046,0030)	FD	1	Horizontal Prism Power		HorizontalPrismPower
(0046,0032)	CS	1	Horizontal Prism Base		HorizontalPrismBase
(0046,0034)	FD	1	Vertical Prism Power		VerticalPrismPower
(0046,0036)	CS	1	Vertical Prism Base		VerticalPrismBase
(0046,0038)	CS	1	Lens Segment Type		LensSegmentType
(0046,0040)	FD	1	Optical Transmittance		OpticalTransmittance
(0046,0042)	FD	1	Channel Width		ChannelWidth
(0046,0044)	FD	1	Pupil Size		PupilSize
(0046,0046)	FD	1	Corneal Size		CornealSize
(0046,0047)	SQ	1	Corneal Size Sequence		CornealSizeSequence
(0046,0050)	SQ	1	Autorefraction Right Eye Sequence		AutorefractionRightEyeSequence
(0046,0052)	SQ	1	Autorefraction Left Eye Sequence		AutorefractionLeftEyeSequence
(0046,0060)	FD	1	Distance Pupillary Distance		DistancePupillaryDistance
(0046,0062)	FD	1	Near Pupillary Distance		NearPupillaryDistance
(0046,0063)	FD	1	Intermediate Pupillary Distance		IntermediatePupillaryDistance
(0046,0064)	FD	1	Other Pupillary Distance		OtherPupillaryDistance
(0046,0070)	SQ	1	Keratometry Right Eye Sequence		KeratometryRightEyeSequence
(0046,0071)	SQ	1	Keratometry Left Eye Sequence		KeratometryLeftEyeSequence
(0046,0074)	SQ	1	Steep Keratometric Axis Sequence		SteepKeratometricAxisSequence
(0046,0075)	FD	1	Radius of Curvature		RadiusOfCurvature
(0046,0076)	FD	1	Keratometric Power		KeratometricPower
(0046,0077)	FD	1	Keratometric Axis		KeratometricAxis
(0046,0080)	SQ	1	Flat Keratometric Axis Sequence		FlatKeratometricAxisSequence
(0046,0092)	CS	1	Background Color		BackgroundColor
(0046,0094)	CS	1	Optotype		Optotype
(0046,0095)	CS	1	Optotype Presentation		OptotypePresentation
(0046,0097)	SQ	1	Subjective Refraction Right Eye Sequence		SubjectiveRefractionRightEyeSequence
(0046,0098)	SQ	1	Subjective Refraction Left Eye Sequence		SubjectiveRefractionLeftEyeSequence
(0046,0100)	SQ	1	Add Near Sequence		AddNearSequence
(0046,0101)	SQ	1	Add Intermediate Sequence		AddIntermediateSequence
(0046,0102)	SQ	1	Add Other Sequence		AddOtherSequence
(0046,0104)	FD	1	Add Power		AddPower
(0046,0106)	FD	1	Viewing Distance		ViewingDistance
(0046,0110)	SQ	1	Cornea Measurements Sequence		CorneaMeasurementsSequence
(0046,0111)	SQ	1	Source of Cornea Measurement Data Code Sequence		SourceOfCorneaMeasurementDataCodeSequence
(0046,0112)	SQ	1	Steep Corneal Axis Sequence		SteepCornealAxisSequence
(0046,0113)	SQ	1	Flat Corneal Axis Sequence		FlatCornealAxisSequence
(0046,0114)	FD	1	Corneal Power		CornealPower
(0046,0115)	FD	1	Corneal Axis		CornealAxis
(0046,0116)	SQ	1	Cornea Measurement Method Code Sequence		CorneaMeasurementMethodCodeSequence
(0046,0117)	FL	1	Refractive Index of Cornea		RefractiveIndexOfCornea
(0046,0118)	FL	1	Refractive Index of Aqueous Humor		RefractiveIndexOfAqueousHumor
(0046,0121)	SQ	1	Visual Acuity Type Code Sequence		VisualAcuityTypeCodeSequence
(0046,0122)	SQ	1	Visual Acuity Right Eye Sequence		VisualAcuityRightEyeSequence
(0046,0123)	SQ	1	Visual Acuity Left Eye Sequence		VisualAcuityLeftEyeSequence
(0046,0124)	SQ	1	Visual Acuity Both Eyes Open Sequence		VisualAcuityBothEyesOpenSequence
(0046,0125)	CS	1	Viewing Distance Type		ViewingDistanceType
(0046,0135)	SS	2	Visual Acuity Modifiers		VisualAcuityModifiers
(0046,0137)	FD	1	Decimal Visual Acuity		DecimalVisualAcuity
(0046,0139)	LO	1	Optotype Detailed Definition		OptotypeDetailedDefinition
(0046,0145)	SQ	1	Referenced Refractive Measurements Sequence		ReferencedRefractiveMeasurementsSequence
(0046,0146)	FD	1	Sphere Power		SpherePower
(0046,0147)	FD	1	Cylinder Power		CylinderPower
(0046,0201)	CS	1	Corneal Topography Surface		CornealTopographySurface
(0046,0202)	FL	2	Corneal Vertex Location		CornealVertexLocation
(0046,0203)	FL	1	Pupil Centroid X-Coordinate		PupilCentroidXCoordinate
(0046,0204)	FL	1	Pupil Centroid Y-Coordinate		PupilCentroidYCoordinate
(0046,0205)	FL	1	Equivalent Pupil Radius		EquivalentPupilRadius
(0046,0207)	SQ	1	Corneal Topography Map Type Code Sequence		CornealTopographyMapTypeCodeSequence
(0046,0208)	IS	2-2n	Vertices of the Outline of Pupil		VerticesOfTheOutlineOfPupil
(0046,0210)	SQ	1	Corneal Topography Mapping Normals Sequence		CornealTopographyMappingNormalsSequence
(0046,0211)	SQ	1	Maximum Corneal Curvature Sequence		MaximumCornealCurvatureSequence
(0046,0212)	FL	1	Maximum Corneal Curvature		MaximumCornealCurvature
(0046,0213)	FL	2	Maximum Corneal Curvature Location		MaximumCornealCurvatureLocation
(0046,0215)	SQ	1	Minimum Keratometric Sequence		MinimumKeratometricSequence
(0046,0218)	SQ	1	Simulated Keratometric Cylinder Sequence		SimulatedKeratometricCylinderSequence
(0046,0220)	FL	1	Average Corneal Power		AverageCornealPower
(0046,0224)	FL	1	Corneal I-S Value		CornealISValue
(0046,0227)	FL	1	Analyzed Area		AnalyzedArea
(0046,0230)	FL	1	Surface Regularity Index		SurfaceRegularityIndex
(0046,0232)	FL	1	Surface Asymmetry Index		SurfaceAsymmetryIndex
(0046,0234)	FL	1	Corneal Eccentricity Index		CornealEccentricityIndex
(0046,0236)	FL	1	Keratoconus Prediction Index		KeratoconusPredictionIndex
(0046,0238)	FL	1	Decimal Potential Visual Acuity		DecimalPotentialVisualAcuity
(0046,0242)	CS	1	Corneal Topography Map Quality Evaluation		CornealTopographyMapQualityEvaluation
(0046,0244)	SQ	1	Source Image Corneal Processed Data Sequence		SourceImageCornealProcessedDataSequence
(0046,0247)	FL	3	Corneal Point Location		CornealPointLocation
(0046,0248)	CS	1	Corneal Point Estimated		CornealPointEstimated
(0046,0249)	FL	1	Axial Power		AxialPower
(0046,0250)	FL	1	Tangential Power		TangentialPower
(0046,0251)	FL	1	Refractive Power		RefractivePower
(0046,0252)	FL	1	Relative Elevation		RelativeElevation
(0046,0253)	FL	1	Corneal Wavefront		CornealWavefront
(0048,0001)	FL	1	Imaged Volume Width		ImagedVolumeWidth
(0048,0002)	FL	1	Imaged Volume Height		ImagedVolumeHeight
(0048,0003)	FL	1	Imaged Volume Depth		ImagedVolumeDepth
(0048,0006)	UL	1	Total Pixel Matrix Columns		TotalPixelMatrixColumns
(0048,0007)	UL	1	Total Pixel Matrix Rows		TotalPixelMatrixRows
(0048,0008)	SQ	1	Total Pixel Matrix Origin Sequence		TotalPixelMatrixOriginSequence
(0048,0010)	CS	1	Specimen Label in Image		SpecimenLabelInImage
(0048,0011)	CS	1	Focus Method		FocusMethod
(0048,0012)	CS	1	Extended Depth of Field		ExtendedDepthOfField
(0048,0013)	US	1	Number of Focal Planes		NumberOfFocalPlanes
(0048,0014)	FL	1	Distance Between Focal Planes		DistanceBetweenFocalPlanes
(0048,0015)	US	3	Recommended Absent Pixel CIELab Value		RecommendedAbsentPixelCIELabValue
(0048,0100)	SQ	1	Illuminator Type Code Sequence		IlluminatorTypeCodeSequence
(0048,0102)	DS	6	Image Orientation (Slide)		ImageOrientationSlide
(0048,0105)	SQ	1	Optical Path Sequence		OpticalPathSequence
(0048,0106)	SH	1	Optical Path Identifier		OpticalPathIdentifier
(0048,0107)	ST	1	Optical Path Description		OpticalPathDescription
(0048,0108)	SQ	1	Illumination Color Code Sequence		IlluminationColorCodeSequence
(0048,0110)	SQ	1	Specimen Reference Sequence		SpecimenReferenceSequence
(0048,0111)	DS	1	Condenser Lens Power		CondenserLensPower
(0048,0112)	DS	1	Objective Lens Power		ObjectiveLensPower
(0048,0113)	DS	1	Objective Lens Numerical Aperture		ObjectiveLensNumericalAperture
(0048,0114)	CS	1	Confocal Mode		ConfocalMode
(0048,0115)	CS	1	Tissue Location		TissueLocation
(0048,0116)	SQ	1	Confocal Microscopy Image Frame Type Sequence		ConfocalMicroscopyImageFrameTypeSequence
(0048,0117)	FD	1	Image Acquisition Depth		ImageAcquisitionDepth
(0048,0120)	SQ	1	Palette Color Lookup Table Sequence		PaletteColorLookupTableSequence
(0048,0200)	SQ	1	Referenced Image Navigation Sequence	RET	ReferencedImageNavigationSequence
(0048,0201)	US	2	Top Left Hand Corner of Localizer Area	RET	TopLeftHandCornerOfLocalizerArea
(0048,0202)	US	2	Bottom Right Hand Corner of Localizer Area	RET	BottomRightHandCornerOfLocalizerArea
(0048,0207)	SQ	1	Optical Path Identification Sequence		OpticalPathIdentificationSequence
(0048,021A)	SQ	1	Plane Position (Slide) Sequence		PlanePositionSlideSequence
(0048,021E)	SL	1	Column Position In Total Image Pixel Matrix		ColumnPositionInTotalImagePixelMatrix
(0048,021F)	SL	1	Row Position In Total Image Pixel Matrix		RowPositionInTotalImagePixelMatrix
(0048,0301)	CS	1	Pixel Origin Interpretation		PixelOriginInterpretation
(0048,0302)	UL	1	Number of Optical Paths		NumberOfOpticalPaths
(0048,0303)	UL	1	Total Pixel Matrix Focal Planes		TotalPixelMatrixFocalPlanes
(0050,0004)	CS	1	Calibration Image		CalibrationImage
(0050,0010)	SQ	1	Device Sequence		DeviceSequence
(0050,0012)	SQ	1	Container Component Type Code Sequence		ContainerComponentTypeCodeSequence
(0050,0013)	FD	1	Container Component Thickness		ContainerComponentThickness
(0050,0014)	DS	1	Device Length		DeviceLength
(0050,0015)	FD	1	Container Component Width		ContainerComponentWidth
(0050,0016)	DS	1	Device Diameter		DeviceDiameter
(0050,0017)	CS	1	Device Diameter Units		DeviceDiameterUnits
(0050,0018)	DS	1	Device Volume		DeviceVolume
(0050,0019)	DS	1	Inter-Marker Distance		InterMarkerDistance
(0050,001A)	CS	1	Container Component Material		ContainerComponentMaterial
(0050,001B)	LO	1	Container Component ID		ContainerComponentID
(0050,001C)	FD	1	Container Component Length		ContainerComponentLength
(0050,001D)	FD	1	Container Component Diameter		ContainerComponentDiameter
(0050,001E)	LO	1	Container Component Description		ContainerComponentDescription
(0050,0020)	LO	1	Device Description		DeviceDescription
(0050,0021)	ST	1	Long Device Description		LongDeviceDescription
(0052,0001)	FL	1	Contrast/Bolus Ingredient Percent by Volume		ContrastBolusIngredientPercentByVolume
(0052,0002)	FD	1	OCT Focal Distance		OCTFocalDistance
(0052,0003)	FD	1	Beam Spot Size		BeamSpotSize
(0052,0004)	FD	1	Effective Refractive Index		EffectiveRefractiveIndex
(0052,0006)	CS	1	OCT Acquisition Domain		OCTAcquisitionDomain
(0052,0007)	FD	1	OCT Optical Center Wavelength		OCTOpticalCenterWavelength
(0052,0008)	FD	1	Axial Resolution		AxialResolution
(0052,0009)	FD	1	Ranging Depth		RangingDepth
(0052,0011)	FD	1	A-line Rate		ALineRate
(0052,0012)	US	1	A-lines Per Frame		ALinesPerFrame
(0052,0013)	FD	1	Catheter Rotational Rate		CatheterRotationalRate
(0052,0014)	FD	1	A-line Pixel Spacing		ALinePixelSpacing
(0052,0016)	SQ	1	Mode of Percutaneous Access Sequence		ModeOfPercutaneousAccessSequence
(0052,0025)	SQ	1	Intravascular OCT Frame Type Sequence		IntravascularOCTFrameTypeSequence
(0052,0026)	CS	1	OCT Z Offset Applied		OCTZOffsetApplied
(0052,0027)	SQ	1	Intravascular Frame Content Sequence		IntravascularFrameContentSequence
(0052,0028)	FD	1	Intravascular Longitudinal Distance		IntravascularLongitudinalDistance
(0052,0029)	SQ	1	Intravascular OCT Frame Content Sequence		IntravascularOCTFrameContentSequence
(0052,0030)	SS	1	OCT Z Offset Correction		OCTZOffsetCorrection
(0052,0031)	CS	1	Catheter Direction of Rotation		CatheterDirectionOfRotation
(0052,0033)	FD	1	Seam Line Location		SeamLineLocation
(0052,0034)	FD	1	First A-line Location		FirstALineLocation
(0052,0036)	US	1	Seam Line Index		SeamLineIndex
(0052,0038)	US	1	Number of Padded A-lines		NumberOfPaddedALines
(0052,0039)	CS	1	Interpolation Type		InterpolationType
(0052,003A)	CS	1	Refractive Index Applied		RefractiveIndexApplied
(0054,0010)	US	1-n	Energy Window Vector		EnergyWindowVector
(0054,0011)	US	1	Number of Energy Windows		NumberOfEnergyWindows
(0054,0012)	SQ	1	Energy Window Information Sequence		EnergyWindowInformationSequence
(0054,0013)	SQ	1	Energy Window Range Sequence		EnergyWindowRangeSequence
(0054,0014)	DS	1	Energy Window Lower Limit		EnergyWindowLowerLimit
(0054,0015)	DS	1	Energy Window Upper Limit		EnergyWindowUpperLimit
(0054,0016)	SQ	1	Radiopharmaceutical Information Sequence		RadiopharmaceuticalInformationSequence
(0054,0017)	IS	1	Residual Syringe Counts		ResidualSyringeCounts
(0054,0018)	SH	1	Energy Window Name		EnergyWindowName
(0054,0020)	US	1-n	Detector Vector		DetectorVector
(0054,0021)	US	1	Number of Detectors		NumberOfDetectors
(0054,0022)	SQ	1	Detector Information Sequence		DetectorInformationSequence
(0054,0030)	US	1-n	Phase Vector		PhaseVector
(0054,0031)	US	1	Number of Phases		NumberOfPhases
(0054,0032)	SQ	1	Phase Information Sequence		PhaseInformationSequence
(0054,0033)	US	1	Number of Frames in Phase		NumberOfFramesInPhase
(0054,0036)	IS	1	Phase Delay		PhaseDelay
(0054,0038)	IS	1	Pause Between Frames		PauseBetweenFrames
(0054,0039)	CS	1	Phase Description		PhaseDescription
(0054,0050)	US	1-n	Rotation Vector		RotationVector
(0054,0051)	US	1	Number of Rotations		NumberOfRotations
(0054,0052)	SQ	1	Rotation Information Sequence		RotationInformationSequence
(0054,0053)	US	1	Number of Frames in Rotation		NumberOfFramesInRotation
(0054,0060)	US	1-n	R-R Interval Vector		RRIntervalVector
(0054,0061)	US	1	Number of R-R Intervals		NumberOfRRIntervals
(0054,0062)	SQ	1	Gated Information Sequence		GatedInformationSequence
(0054,0063)	SQ	1	Data Information Sequence		DataInformationSequence
(0054,0070)	US	1-n	Time Slot Vector		TimeSlotVector
(0054,0071)	US	1	Number of Time Slots		NumberOfTimeSlots
(0054,0072)	SQ	1	Time Slot Information Sequence		TimeSlotInformationSequence
(0054,0073)	DS	1	Time Slot Time		TimeSlotTime
(0054,0080)	US	1-n	Slice Vector		SliceVector
(0054,0081)	US	1	Number of Slices		NumberOfSlices
(0054,0090)	US	1-n	Angular View Vector		AngularViewVector
(0054,0100)	US	1-n	Time Slice Vector		TimeSliceVector
(0054,0101)	US	1	Number of Time Slices		NumberOfTimeSlices
(0054,0200)	DS	1	Start Angle		StartAngle
(0054,0202)	CS	1	Type of Detector Motion		TypeOfDetectorMotion
(0054,0210)	IS	1-n	Trigger Vector		TriggerVector
(0054,0211)	US	1	Number of Triggers in Phase		NumberOfTriggersInPhase
(0054,0220)	SQ	1	View Code Sequence		ViewCodeSequence
(0054,0222)	SQ	1	View Modifier Code Sequence		ViewModifierCodeSequence
(0054,0300)	SQ	1	Radionuclide Code Sequence		RadionuclideCodeSequence
(0054,0302)	SQ	1	Administration Route Code Sequence		AdministrationRouteCodeSequence
(0054,0304)	SQ	1	Radiopharmaceutical Code Sequence		RadiopharmaceuticalCodeSequence
(0054,0306)	SQ	1	Calibration Data Sequence		CalibrationDataSequence
(0054,0308)	US	1	Energy Window Number		EnergyWindowNumber
(0054,0400)	SH	1	Image ID		ImageID
(0054,0410)	SQ	1	Patient Orientation Code Sequence		PatientOrientationCodeSequence
(0054,0412)	SQ	1	Patient Orientation Modifier Code Sequence		PatientOrientationModifierCodeSequence
(0054,0414)	SQ	1	Patient Gantry Relationship Code Sequence		PatientGantryRelationshipCodeSequence
(0054,0500)	CS	1	Slice Progression Direction		SliceProgressionDirection
(0054,0501)	CS	1	Scan Progression Direction		ScanProgressionDirection
(0054,1000)	CS	2	Series Type		SeriesType
(0054,1001)	CS	1	Units		Units
(0054,1002)	CS	1	Counts Source		CountsSource
(0054,1004)	CS	1	Reprojection Method		ReprojectionMethod
(0054,1006)	CS	1	SUV Type		SUVType
(0054,1100)	CS	1	Randoms Correction Method		RandomsCorrectionMethod
(0054,1101)	LO	1	Attenuation Correction Method		AttenuationCorrectionMethod
(0054,1102)	CS	1	Decay Correction		DecayCorrection
(0054,1103)	LO	1	Reconstruction Method		ReconstructionMethod
(0054,1104)	LO	1	Detector Lines of Response Used		DetectorLinesOfResponseUsed
(0054,1105)	LO	1	Scatter Correction Method		ScatterCorrectionMethod
(0054,1200)	DS	1	Axial Acceptance		AxialAcceptance
(0054,1201)	IS	2	Axial Mash		AxialMash
(0054,1202)	IS	1	Transverse Mash		TransverseMash
(0054,1203)	DS	2	Detector Element Size		DetectorElementSize
(0054,1210)	DS	1	Coincidence Window Width		CoincidenceWindowWidth
(0054,1220)	CS	1-n	Secondary Counts Type		SecondaryCountsType
(0054,1300)	DS	1	Frame Reference Time		FrameReferenceTime
(0054,1310)	IS	1	Primary (Prompts) Counts Accumulated		PrimaryPromptsCountsAccumulated
(0054,1311)	IS	1-n	Secondary Counts Accumulated		SecondaryCountsAccumulated
(0054,1320)	DS	1	Slice Sensitivity Factor		SliceSensitivityFactor
(0054,1321)	DS	1	Decay Factor		DecayFactor
(0054,1322)	DS	1	Dose Calibration Factor		DoseCalibrationFactor
(0054,1323)	DS	1	Scatter Fraction Factor		ScatterFractionFactor
(0054,1324)	DS	1	Dead Time Factor		DeadTimeFactor
(0054,1330)	US	1	Image Index		ImageIndex
(0054,1400)	CS	1-n	Counts Included	RET	CountsIncluded
(0054,1401)	CS	1	Dead Time Correction Flag	RET	DeadTimeCorrectionFlag
(0060,3000)	SQ	1	Histogram Sequence		HistogramSequence
(0060,3002)	US	1	Histogram Number of Bins		HistogramNumberOfBins
(0060,3004)	US or SS	1	Histogram First Bin Value		HistogramFirstBinValue
(0060,3006)	US or SS	1	Histogram Last Bin Value		HistogramLastBinValue
(0060,3008)	US	1	Histogram Bin Width		HistogramBinWidth
(0060,3010)	LO	1	Histogram Explanation		HistogramExplanation
(0060,3020)	UL	1-n	Histogram Data		HistogramData
(0062,0001)	CS	1	Segmentation Type		SegmentationType
(0062,0002)	SQ	1	Segment Sequence		SegmentSequence
(0062,0003)	SQ	1	Segmented Property Category Code Sequence		SegmentedPropertyCategoryCodeSequence
(0062,0004)	US	1	Segment Number		SegmentNumber
(0062,0005)	LO	1	Segment Label		SegmentLabel
(0062,0006)	ST	1	Segment Description		SegmentDescription
(0062,0007)	SQ	1	Segmentation Algorithm Identification Sequence		SegmentationAlgorithmIdentificationSequence
(0062,0008)	CS	1	Segment Algorithm Type		SegmentAlgorithmType
(0062,0009)	LO	1-n	Segment Algorithm Name		SegmentAlgorithmName
(0062,000A)	SQ	1	Segment Identification Sequence		SegmentIdentificationSequence
(0062,000B)	US	1-n	Referenced Segment Number		ReferencedSegmentNumber
(0062,000C)	US	1	Recommended Display Grayscale Value		RecommendedDisplayGrayscaleValue
(0062,000D)	US	3	Recommended Display CIELab Value		RecommendedDisplayCIELabValue
(0062,000E)	US	1	Maximum Fractional Value		MaximumFractionalValue
(0062,000F)	SQ	1	Segmented Property Type Code Sequence		SegmentedPropertyTypeCodeSequence
(0062,0010)	CS	1	Segmentation Fractional Type		SegmentationFractionalType
(0062,0011)	SQ	1	Segmented Property Type Modifier Code Sequence		SegmentedPropertyTypeModifierCodeSequence
(0062,0012)	SQ	1	Used Segments Sequence		UsedSegmentsSequence
(0062,0013)	CS	1	Segments Overlap		SegmentsOverlap
(0062,0020)	UT	1	Tracking ID		TrackingID
(0062,0021)	UI	1	Tracking UID		TrackingUID
(0064,0002)	SQ	1	Deformable Registration Sequence		DeformableRegistrationSequence
(0064,0003)	UI	1	Source Frame of Reference UID		SourceFrameOfReferenceUID
(0064,0005)	SQ	1	Deformable Registration Grid Sequence		DeformableRegistrationGridSequence
(0064,0007)	UL	3	Grid Dimensions		GridDimensions
(0064,0008)	FD	3	Grid Resolution		GridResolution
(0064,0009)	OF	1	Vector Grid Data		VectorGridData
(0064,000F)	SQ	1	Pre Deformation Matrix Registration Sequence		PreDeformationMatrixRegistrationSequence
(0064,0010)	SQ	1	Post Deformation Matrix Registration Sequence		PostDeformationMatrixRegistrationSequence
(0066,0001)	UL	1	Number of Surfaces		NumberOfSurfaces
(0066,0002)	SQ	1	Surface Sequence		SurfaceSequence
(0066,0003)	UL	1	Surface Number		SurfaceNumber
(0066,0004)	LT	1	Surface Comments		SurfaceComments
(0066,0009)	CS	1	Surface Processing		SurfaceProcessing
(0066,000A)	FL	1	Surface Processing Ratio		SurfaceProcessingRatio
(0066,000B)	LO	1	Surface Processing Description		SurfaceProcessingDescription
(0066,000C)	FL	1	Recommended Presentation Opacity		RecommendedPresentationOpacity
(0066,000D)	CS	1	Recommended Presentation Type		RecommendedPresentationType
(0066,000E)	CS	1	Finite Volume		FiniteVolume
(0066,0010)	CS	1	Manifold		Manifold
(0066,0011)	SQ	1	Surface Points Sequence		SurfacePointsSequence
(0066,0012)	SQ	1	Surface Points Normals Sequence		SurfacePointsNormalsSequence
(0066,0013)	SQ	1	Surface Mesh Primitives Sequence		SurfaceMeshPrimitivesSequence
(0066,0015)	UL	1	Number of Surface Points		NumberOfSurfacePoints
(0066,0016)	OF	1	Point Coordinates Data		PointCoordinatesData
(0066,0017)	FL	3	Point Position Accuracy		PointPositionAccuracy
(0066,0018)	FL	1	Mean Point Distance		MeanPointDistance
(0066,0019)	FL	1	Maximum Point Distance		MaximumPointDistance
(0066,001A)	FL	6	Points Bounding Box Coordinates		PointsBoundingBoxCoordinates
(0066,001B)	FL	3	Axis of Rotation		AxisOfRotation
(0066,001C)	FL	3	Center of Rotation		CenterOfRotation
(0066,001E)	UL	1	Number of Vectors		NumberOfVectors
(0066,001F)	US	1	Vector Dimensionality		VectorDimensionality
(0066,0020)	FL	1-n	Vector Accuracy		VectorAccuracy
(0066,0021)	OF	1	Vector Coordinate Data		VectorCoordinateData
(0066,0022)	OD	1	Double Point Coordinates Data		DoublePointCoordinatesData
(0066,0023)	OW	1	Triangle Point Index List	RET	TrianglePointIndexList
(0066,0024)	OW	1	Edge Point Index List	RET	EdgePointIndexList
(0066,0025)	OW	1	Vertex Point Index List	RET	VertexPointIndexList
(0066,0026)	SQ	1	Triangle Strip Sequence		TriangleStripSequence
(0066,0027)	SQ	1	Triangle Fan Sequence		TriangleFanSequence
(0066,0028)	SQ	1	Line Sequence		LineSequence
(0066,0029)	OW	1	Primitive Point Index List	RET	PrimitivePointIndexList
(0066,002A)	UL	1	Surface Count		SurfaceCount
(0066,002B)	SQ	1	Referenced Surface Sequence		ReferencedSurfaceSequence
(0066,002C)	UL	1	Referenced Surface Number		ReferencedSurfaceNumber
(0066,002D)	SQ	1	Segment Surface Generation Algorithm Identification Sequence		SegmentSurfaceGenerationAlgorithmIdentificationSequence
(0066,002E)	SQ	1	Segment Surface Source Instance Sequence		SegmentSurfaceSourceInstanceSequence
(0066,002F)	SQ	1	Algorithm Family Code Sequence		AlgorithmFamilyCodeSequence
(0066,0030)	SQ	1	Algorithm Name Code Sequence		AlgorithmNameCodeSequence
(0066,0031)	LO	1	Algorithm Version		AlgorithmVersion
(0066,0032)	LT	1	Algorithm Parameters		AlgorithmParameters
(0066,0034)	SQ	1	Facet Sequence		FacetSequence
(0066,0035)	SQ	1	Surface Processing Algorithm Identification Sequence		SurfaceProcessingAlgorithmIdentificationSequence
(0066,0036)	LO	1	Algorithm Name		AlgorithmName
(0066,0037)	FL	1	Recommended Point Radius		RecommendedPointRadius
(0066,0038)	FL	1	Recommended Line Thickness		RecommendedLineThickness
(0066,0040)	OL	1	Long Primitive Point Index List		LongPrimitivePointIndexList
(0066,0041)	OL	1	Long Triangle Point Index List		LongTrianglePointIndexList
(0066,0042)	OL	1	Long Edge Point Index List		LongEdgePointIndexList
(0066,0043)	OL	1	Long Vertex Point Index List		LongVertexPointIndexList
(0066,0101)	SQ	1	Track Set Sequence		TrackSetSequence
(0066,0102)	SQ	1	Track Sequence		TrackSequence
(0066,0103)	OW	1	Recommended Display CIELab Value List		RecommendedDisplayCIELabValueList
(0066,0104)	SQ	1	Tracking Algorithm Identification Sequence		TrackingAlgorithmIdentificationSequence
(0066,0105)	UL	1	Track Set Number		TrackSetNumber
(0066,0106)	LO	1	Track Set Label		TrackSetLabel
(0066,0107)	UT	1	Track Set Description		TrackSetDescription
(0066,0108)	SQ	1	Track Set Anatomical Type Code Sequence		TrackSetAnatomicalTypeCodeSequence
(0066,0121)	SQ	1	Measurements Sequence		MeasurementsSequence
(0066,0124)	SQ	1	Track Set Statistics Sequence		TrackSetStatisticsSequence
(0066,0125)	OF	1	Floating Point Values		FloatingPointValues
(0066,0129)	OL	1	Track Point Index List		TrackPointIndexList
(0066,0130)	SQ	1	Track Statistics Sequence		TrackStatisticsSequence
(0066,0132)	SQ	1	Measurement Values Sequence		MeasurementValuesSequence
(0066,0133)	SQ	1	Diffusion Acquisition Code Sequence		DiffusionAcquisitionCodeSequence
(0066,0134)	SQ	1	Diffusion Model Code Sequence		DiffusionModelCodeSequence
(0068,6210)	LO	1	Implant Size		ImplantSize
(0068,6221)	LO	1	Implant Template Version		ImplantTemplateVersion
(0068,6222)	SQ	1	Replaced Implant Template Sequence		ReplacedImplantTemplateSequence
(0068,6223)	CS	1	Implant Type		ImplantType
(0068,6224)	SQ	1	Derivation Implant Template Sequence		DerivationImplantTemplateSequence
(0068,6225)	SQ	1	Original Implant Template Sequence		OriginalImplantTemplateSequence
(0068,6226)	DT	1	Effective DateTime		EffectiveDateTime
(0068,6230)	SQ	1	Implant Target Anatomy Sequence		ImplantTargetAnatomySequence
(0068,6260)	SQ	1	Information From Manufacturer Sequence		InformationFromManufacturerSequence
(0068,6265)	SQ	1	Notification From Manufacturer Sequence		NotificationFromManufacturerSequence
(0068,6270)	DT	1	Information Issue DateTime		InformationIssueDateTime
(0068,6280)	ST	1	Information Summary		InformationSummary
(0068,62A0)	SQ	1	Implant Regulatory Disapproval Code Sequence		ImplantRegulatoryDisapprovalCodeSequence
(0068,62A5)	FD	1	Overall Template Spatial Tolerance		OverallTemplateSpatialTolerance
(0068,62C0)	SQ	1	HPGL Document Sequence		HPGLDocumentSequence
(0068,62D0)	US	1	HPGL Document ID		HPGLDocumentID
(0068,62D5)	LO	1	HPGL Document Label		HPGLDocumentLabel
(0068,62E0)	SQ	1	View Orientation Code Sequence		ViewOrientationCodeSequence
(0068,62F0)	SQ	1	View Orientation Modifier Code Sequence		ViewOrientationModifierCodeSequence
(0068,62F2)	FD	1	HPGL Document Scaling		HPGLDocumentScaling
(0068,6300)	OB	1	HPGL Document		HPGLDocument
(0068,6310)	US	1	HPGL Contour Pen Number		HPGLContourPenNumber
(0068,6320)	SQ	1	HPGL Pen Sequence		HPGLPenSequence
(0068,6330)	US	1	HPGL Pen Number		HPGLPenNumber
(0068,6340)	LO	1	HPGL Pen Label		HPGLPenLabel
(0068,6345)	ST	1	HPGL Pen Description		HPGLPenDescription
(0068,6346)	FD	2	Recommended Rotation Point		RecommendedRotationPoint
(0068,6347)	FD	4	Bounding Rectangle		BoundingRectangle
(0068,6350)	US	1-n	Implant Template 3D Model Surface Number		ImplantTemplate3DModelSurfaceNumber
(0068,6360)	SQ	1	Surface Model Description Sequence		SurfaceModelDescriptionSequence
(0068,6380)	LO	1	Surface Model Label		SurfaceModelLabel
(0068,6390)	FD	1	Surface Model Scaling Factor		SurfaceModelScalingFactor
(0068,63A0)	SQ	1	Materials Code Sequence		MaterialsCodeSequence
(0068,63A4)	SQ	1	Coating Materials Code Sequence		CoatingMaterialsCodeSequence
(0068,63A8)	SQ	1	Implant Type Code Sequence		ImplantTypeCodeSequence
(0068,63AC)	SQ	1	Fixation Method Code Sequence		FixationMethodCodeSequence
(0068,63B0)	SQ	1	Mating Feature Sets Sequence		MatingFeatureSetsSequence
(0068,63C0)	US	1	Mating Feature Set ID		MatingFeatureSetID
(0068,63D0)	LO	1	Mating Feature Set Label		MatingFeatureSetLabel
(0068,63E0)	SQ	1	Mating Feature Sequence		MatingFeatureSequence
(0068,63F0)	US	1	Mating Feature ID		MatingFeatureID
(0068,6400)	SQ	1	Mating Feature Degree of Freedom Sequence		MatingFeatureDegreeOfFreedomSequence
(0068,6410)	US	1	Degree of Freedom ID		DegreeOfFreedomID
(0068,6420)	CS	1	Degree of Freedom Type		DegreeOfFreedomType
(0068,6430)	SQ	1	2D Mating Feature Coordinates Sequence		TwoDMatingFeatureCoordinatesSequence
(0068,6440)	US	1	Referenced HPGL Document ID		ReferencedHPGLDocumentID
(0068,6450)	FD	2	2D Mating Point		TwoDMatingPoint
(0068,6460)	FD	4	2D Mating Axes		TwoDMatingAxes
(0068,6470)	SQ	1	2D Degree of Freedom Sequence		TwoDDegreeOfFreedomSequence
(0068,6490)	FD	3	3D Degree of Freedom Axis		ThreeDDegreeOfFreedomAxis
(0068,64A0)	FD	2	Range of Freedom		RangeOfFreedom
(0068,64C0)	FD	3	3D Mating Point		ThreeDMatingPoint
(0068,64D0)	FD	9	3D Mating Axes		ThreeDMatingAxes
(0068,64F0)	FD	3	2D Degree of Freedom Axis		TwoDDegreeOfFreedomAxis
(0068,6500)	SQ	1	Planning Landmark Point Sequence		PlanningLandmarkPointSequence
(0068,6510)	SQ	1	Planning Landmark Line Sequence		PlanningLandmarkLineSequence
(0068,6520)	SQ	1	Planning Landmark Plane Sequence		PlanningLandmarkPlaneSequence
(0068,6530)	US	1	Planning Landmark ID		PlanningLandmarkID
(0068,6540)	LO	1	Planning Landmark Description		PlanningLandmarkDescription
(0068,6545)	SQ	1	Planning Landmark Identification Code Sequence		PlanningLandmarkIdentificationCodeSequence
(0068,6550)	SQ	1	2D Point Coordinates Sequence		TwoDPointCoordinatesSequence
(0068,6560)	FD	2	2D Point Coordinates		TwoDPointCoordinates
(0068,6590)	FD	3	3D Point Coordinates		ThreeDPointCoordinates
(0068,65A0)	SQ	1	2D Line Coordinates Sequence		TwoDLineCoordinatesSequence
(0068,65B0)	FD	4	2D Line Coordinates		TwoDLineCoordinates
(0068,65D0)	FD	6	3D Line Coordinates		ThreeDLineCoordinates
(0068,65E0)	SQ	1	2D Plane Coordinates Sequence		TwoDPlaneCoordinatesSequence
(0068,65F0)	FD	4	2D Plane Intersection		TwoDPlaneIntersection
(0068,6610)	FD	3	3D Plane Origin		ThreeDPlaneOrigin
(0068,6620)	FD	3	3D Plane Normal		ThreeDPlaneNormal
(0068,7001)	CS	1	Model Modification		ModelModification
(0068,7002)	CS	1	Model Mirroring		ModelMirroring
(0068,7003)	SQ	1	Model Usage Code Sequence		ModelUsageCodeSequence
(0068,7004)	UI	1	Model Group UID		ModelGroupUID
(0068,7005)	UR	1	Relative URI Reference Within Encapsulated Document		RelativeURIReferenceWithinEncapsulatedDocument
(006A,0001)	CS	1	Annotation Coordinate Type		AnnotationCoordinateType
(006A,0002)	SQ	1	Annotation Group Sequence		AnnotationGroupSequence
(006A,0003)	UI	1	Annotation Group UID		AnnotationGroupUID
(006A,0005)	LO	1	Annotation Group Label		AnnotationGroupLabel
(006A,0006)	UT	1	Annotation Group Description		AnnotationGroupDescription
(006A,0007)	CS	1	Annotation Group Generation Type		AnnotationGroupGenerationType
(006A,0008)	SQ	1	Annotation Group Algorithm Identification Sequence		AnnotationGroupAlgorithmIdentificationSequence
(006A,0009)	SQ	1	Annotation Property Category Code Sequence		AnnotationPropertyCategoryCodeSequence
(006A,000A)	SQ	1	Annotation Property Type Code Sequence		AnnotationPropertyTypeCodeSequence
(006A,000B)	SQ	1	Annotation Property Type Modifier Code Sequence		AnnotationPropertyTypeModifierCodeSequence
(006A,000C)	UL	1	Number of Annotations		NumberOfAnnotations
(006A,000D)	CS	1	Annotation Applies to All Optical Paths		AnnotationAppliesToAllOpticalPaths
(006A,000E)	SH	1-n	Referenced Optical Path Identifier		ReferencedOpticalPathIdentifier
(006A,000F)	CS	1	Annotation Applies to All Z Planes		AnnotationAppliesToAllZPlanes
(006A,0010)	FD	1-n	Common Z Coordinate Value		CommonZCoordinateValue
(006A,0011)	OL	1	Annotation Index List		AnnotationIndexList
(0070,0001)	SQ	1	Graphic Annotation Sequence		GraphicAnnotationSequence
(0070,0002)	CS	1	Graphic Layer		GraphicLayer
(0070,0003)	CS	1	Bounding Box Annotation Units		BoundingBoxAnnotationUnits
(0070,0004)	CS	1	Anchor Point Annotation Units		AnchorPointAnnotationUnits
(0070,0005)	CS	1	Graphic Annotation Units		GraphicAnnotationUnits
(0070,0006)	ST	1	Unformatted Text Value		UnformattedTextValue
(0070,0008)	SQ	1	Text Object Sequence		TextObjectSequence
(0070,0009)	SQ	1	Graphic Object Sequence		GraphicObjectSequence
(0070,0010)	FL	2	Bounding Box Top Left Hand Corner		BoundingBoxTopLeftHandCorner
(0070,0011)	FL	2	Bounding Box Bottom Right Hand Corner		BoundingBoxBottomRightHandCorner
(0070,0012)	CS	1	Bounding Box Text Horizontal Justification		BoundingBoxTextHorizontalJustification
(0070,0014)	FL	2	Anchor Point		AnchorPoint
(0070,0015)	CS	1	Anchor Point Visibility		AnchorPointVisibility
(0070,0020)	US	1	Graphic Dimensions		GraphicDimensions
(0070,0021)	US	1	Number of Graphic Points		NumberOfGraphicPoints
(0070,0022)	FL	2-n	Graphic Data		GraphicData
(0070,0023)	CS	1	Graphic Type		GraphicType
(0070,0024)	CS	1	Graphic Filled		GraphicFilled
(0070,0040)	IS	1	Image Rotation (Retired)	RET	ImageRotationRetired
(0070,0041)	CS	1	Image Horizontal Flip		ImageHorizontalFlip
(0070,0042)	US	1	Image Rotation		ImageRotation
(0070,0050)	US	2	Displayed Area Top Left Hand Corner (Trial)	RET	DisplayedAreaTopLeftHandCornerTrial
(0070,0051)	US	2	Displayed Area Bottom Right Hand Corner (Trial)	RET	DisplayedAreaBottomRightHandCornerTrial
(0070,0052)	SL	2	Displayed Area Top Left Hand Corner		DisplayedAreaTopLeftHandCorner
(0070,0053)	SL	2	Displayed Area Bottom Right Hand Corner		DisplayedAreaBottomRightHandCorner
(0070,005A)	SQ	1	Displayed Area Selection Sequence		DisplayedAreaSelectionSequence
(0070,0060)	SQ	1	Graphic Layer Sequence		GraphicLayerSequence
(0070,0062)	IS	1	Graphic Layer Order		GraphicLayerOrder
(0070,0066)	US	1	Graphic Layer Recommended Display Grayscale Value		GraphicLayerRecommendedDisplayGrayscaleValue
(0070,0067)	US	3	Graphic Layer Recommended Display RGB Value	RET	GraphicLayerRecommendedDisplayRGBValue
(0070,0068)	LO	1	Graphic Layer Description		GraphicLayerDescription
(0070,0080)	CS	1	Content Label		ContentLabel
(0070,0081)	LO	1	Content Description		ContentDescription
(0070,0082)	DA	1	Presentation Creation Date		PresentationCreationDate
(0070,0083)	TM	1	Presentation Creation Time		PresentationCreationTime
(0070,0084)	PN	1	Content Creator's Name		ContentCreatorName
(0070,0086)	SQ	1	Content Creator's Identification Code Sequence		ContentCreatorIdentificationCodeSequence
(0070,0087)	SQ	1	Alternate Content Description Sequence		AlternateContentDescriptionSequence
(0070,0100)	CS	1	Presentation Size Mode		PresentationSizeMode
(0070,0101)	DS	2	Presentation Pixel Spacing		PresentationPixelSpacing
(0070,0102)	IS	2	Presentation Pixel Aspect Ratio		PresentationPixelAspectRatio
(0070,0103)	FL	1	Presentation Pixel Magnification Ratio		PresentationPixelMagnificationRatio
(0070,0207)	LO	1	Graphic Group Label		GraphicGroupLabel
(0070,0208)	ST	1	Graphic Group Description		GraphicGroupDescription
(0070,0209)	SQ	1	Compound Graphic Sequence		CompoundGraphicSequence
(0070,0226)	UL	1	Compound Graphic Instance ID		CompoundGraphicInstanceID
(0070,0227)	LO	1	Font Name		FontName
(0070,0228)	CS	1	Font Name Type		FontNameType
(0070,0229)	LO	1	CSS Font Name		CSSFontName
(0070,0230)	FD	1	Rotation Angle		RotationAngle
(0070,0231)	SQ	1	Text Style Sequence		TextStyleSequence
(0070,0232)	SQ	1	Line Style Sequence		LineStyleSequence
(0070,0233)	SQ	1	Fill Style Sequence		FillStyleSequence
(0070,0234)	SQ	1	Graphic Group Sequence		GraphicGroupSequence
(0070,0241)	US	3	Text Color CIELab Value		TextColorCIELabValue
(0070,0242)	CS	1	Horizontal Alignment		HorizontalAlignment
(0070,0243)	CS	1	Vertical Alignment		VerticalAlignment
(0070,0244)	CS	1	Shadow Style		ShadowStyle
(0070,0245)	FL	1	Shadow Offset X		ShadowOffsetX
(0070,0246)	FL	1	Shadow Offset Y		ShadowOffsetY
(0070,0247)	US	3	Shadow Color CIELab Value		ShadowColorCIELabValue
(0070,0248)	CS	1	Underlined		Underlined
(0070,0249)	CS	1	Bold		Bold
(0070,0250)	CS	1	Italic		Italic
(0070,0251)	US	3	Pattern On Color CIELab Value		PatternOnColorCIELabValue
(0070,0252)	US	3	Pattern Off Color CIELab Value		PatternOffColorCIELabValue
(0070,0253)	FL	1	Line Thickness		LineThickness
(0070,0254)	CS	1	Line Dashing Style		LineDashingStyle
(0070,0255)	UL	1	Line Pattern		LinePattern
(0070,0256)	OB	1	Fill Pattern		FillPattern
(0070,0257)	CS	1	Fill Mode		FillMode
(0070,0258)	FL	1	Shadow Opacity		ShadowOpacity
(0070,0261)	FL	1	Gap Length		GapLength
(0070,0262)	FL	1	Diameter of Visibility		DiameterOfVisibility
(0070,0273)	FL	2	Rotation Point		RotationPoint
(0070,0274)	CS	1	Tick Alignment		TickAlignment
(0070,0278)	CS	1	Show Tick Label		ShowTickLabel
(0070,0279)	CS	1	Tick Label Alignment		TickLabelAlignment
(0070,0282)	CS	1	Compound Graphic Units		CompoundGraphicUnits
(0070,0284)	FL	1	Pattern On Opacity		PatternOnOpacity
(0070,0285)	FL	1	Pattern Off Opacity		PatternOffOpacity
(0070,0287)	SQ	1	Major Ticks Sequence		MajorTicksSequence
(0070,0288)	FL	1	Tick Position		TickPosition
(0070,0289)	SH	1	Tick Label		TickLabel
(0070,0294)	CS	1	Compound Graphic Type		CompoundGraphicType
(0070,0295)	UL	1	Graphic Group ID		GraphicGroupID
(0070,0306)	CS	1	Shape Type		ShapeType
(0070,0308)	SQ	1	Registration Sequence		RegistrationSequence
(0070,0309)	SQ	1	Matrix Registration Sequence		MatrixRegistrationSequence
(0070,030A)	SQ	1	Matrix Sequence		MatrixSequence
(0070,030B)	FD	16	Frame of Reference to Displayed Coordinate System Transformation Matrix		FrameOfReferenceToDisplayedCoordinateSystemTransformationMatrix
(0070,030C)	CS	1	Frame of Reference Transformation Matrix Type		FrameOfReferenceTransformationMatrixType
(0070,030D)	SQ	1	Registration Type Code Sequence		RegistrationTypeCodeSequence
(0070,030F)	ST	1	Fiducial Description		FiducialDescription
(0070,0310)	SH	1	Fiducial Identifier		FiducialIdentifier
(0070,0311)	SQ	1	Fiducial Identifier Code Sequence		FiducialIdentifierCodeSequence
(0070,0312)	FD	1	Contour Uncertainty Radius		ContourUncertaintyRadius
(0070,0314)	SQ	1	Used Fiducials Sequence		UsedFiducialsSequence
(0070,0315)	SQ	1	Used RT Structure Set ROI Sequence		UsedRTStructureSetROISequence
(0070,0318)	SQ	1	Graphic Coordinates Data Sequence		GraphicCoordinatesDataSequence
(0070,031A)	UI	1	Fiducial UID		FiducialUID
(0070,031B)	UI	1	Referenced Fiducial UID		ReferencedFiducialUID
(0070,031C)	SQ	1	Fiducial Set Sequence		FiducialSetSequence
(0070,031E)	SQ	1	Fiducial Sequence		FiducialSequence
(0070,031F)	SQ	1	Fiducials Property Category Code Sequence		FiducialsPropertyCategoryCodeSequence
(0070,0401)	US	3	Graphic Layer Recommended Display CIELab Value		GraphicLayerRecommendedDisplayCIELabValue
(0070,0402)	SQ	1	Blending Sequence		BlendingSequence
(0070,0403)	FL	1	Relative Opacity		RelativeOpacity
(0070,0404)	SQ	1	Referenced Spatial Registration Sequence		ReferencedSpatialRegistrationSequence
(0070,0405)	CS	1	Blending Position		BlendingPosition
(0070,1101)	UI	1	Presentation Display Collection UID		PresentationDisplayCollectionUID
(0070,1102)	UI	1	Presentation Sequence Collection UID		PresentationSequenceCollectionUID
(0070,1103)	US	1	Presentation Sequence Position Index		PresentationSequencePositionIndex
(0070,1104)	SQ	1	Rendered Image Reference Sequence		RenderedImageReferenceSequence
(0070,1201)	SQ	1	Volumetric Presentation State Input Sequence		VolumetricPresentationStateInputSequence
(0070,1202)	CS	1	Presentation Input Type		PresentationInputType
(0070,1203)	US	1	Input Sequence Position Index		InputSequencePositionIndex
(0070,1204)	CS	1	Crop		Crop
(0070,1205)	US	1-n	Cropping Specification Index		CroppingSpecificationIndex
(0070,1206)	CS	1	Compositing Method	RET	CompositingMethod
(0070,1207)	US	1	Volumetric Presentation Input Number		VolumetricPresentationInputNumber
(0070,1208)	CS	1	Image Volume Geometry		ImageVolumeGeometry
(0070,1209)	UI	1	Volumetric Presentation Input Set UID		VolumetricPresentationInputSetUID
(0070,120A)	SQ	1	Volumetric Presentation Input Set Sequence		VolumetricPresentationInputSetSequence
(0070,120B)	CS	1	Global Crop		GlobalCrop
(0070,120C)	US	1-n	Global Cropping Specification Index		GlobalCroppingSpecificationIndex
(0070,120D)	CS	1	Rendering Method		RenderingMethod
(0070,1301)	SQ	1	Volume Cropping Sequence		VolumeCroppingSequence
(0070,1302)	CS	1	Volume Cropping Method		VolumeCroppingMethod
(0070,1303)	FD	6	Bounding Box Crop		BoundingBoxCrop
(0070,1304)	SQ	1	Oblique Cropping Plane Sequence		ObliqueCroppingPlaneSequence
(0070,1305)	FD	4	Plane		Plane
(0070,1306)	FD	3	Plane Normal		PlaneNormal
(0070,1309)	US	1	Cropping Specification Number		CroppingSpecificationNumber
(0070,1501)	CS	1	Multi-Planar Reconstruction Style		MultiPlanarReconstructionStyle
(0070,1502)	CS	1	MPR Thickness Type		MPRThicknessType
(0070,1503)	FD	1	MPR Slab Thickness		MPRSlabThickness
(0070,1505)	FD	3	MPR Top Left Hand Corner		MPRTopLeftHandCorner
(0070,1507)	FD	3	MPR View Width Direction		MPRViewWidthDirection
(0070,1508)	FD	1	MPR View Width		MPRViewWidth
(0070,150C)	UL	1	Number of Volumetric Curve Points		NumberOfVolumetricCurvePoints
(0070,150D)	OD	1	Volumetric Curve Points		VolumetricCurvePoints
(0070,1511)	FD	3	MPR View Height Direction		MPRViewHeightDirection
(0070,1512)	FD	1	MPR View Height		MPRViewHeight
(0070,1602)	CS	1	Render Projection		RenderProjection
(0070,1603)	FD	3	Viewpoint Position		ViewpointPosition
(0070,1604)	FD	3	Viewpoint LookAt Point		ViewpointLookAtPoint
(0070,1605)	FD	3	Viewpoint Up Direction		ViewpointUpDirection
(0070,1606)	FD	6	Render Field of View		RenderFieldOfView
(0070,1607)	FD	1	Sampling Step Size		SamplingStepSize
(0070,1701)	CS	1	Shading Style		ShadingStyle
(0070,1702)	FD	1	Ambient Reflection Intensity		AmbientReflectionIntensity
(0070,1703)	FD	3	Light Direction		LightDirection
(0070,1704)	FD	1	Diffuse Reflection Intensity		DiffuseReflectionIntensity
(0070,1705)	FD	1	Specular Reflection Intensity		SpecularReflectionIntensity
(0070,1706)	FD	1	Shininess		Shininess
(0070,1801)	SQ	1	Presentation State Classification Component Sequence		PresentationStateClassificationComponentSequence
(0070,1802)	CS	1	Component Type		ComponentType
(0070,1803)	SQ	1	Component Input Sequence		ComponentInputSequence
(0070,1804)	US	1	Volumetric Presentation Input Index		VolumetricPresentationInputIndex
(0070,1805)	SQ	1	Presentation State Compositor Component Sequence		PresentationStateCompositorComponentSequence
(0070,1806)	SQ	1	Weighting Transfer Function Sequence		WeightingTransferFunctionSequence
(0070,1807)	US	3	Weighting Lookup Table Descriptor	RET	WeightingLookupTableDescriptor
(0070,1808)	OB	1	Weighting Lookup Table Data	RET	WeightingLookupTableData
(0070,1901)	SQ	1	Volumetric Annotation Sequence		VolumetricAnnotationSequence
(0070,1903)	SQ	1	Referenced Structured Context Sequence		ReferencedStructuredContextSequence
(0070,1904)	UI	1	Referenced Content Item		ReferencedContentItem
(0070,1905)	SQ	1	Volumetric Presentation Input Annotation Sequence		VolumetricPresentationInputAnnotationSequence
(0070,1907)	CS	1	Annotation Clipping		AnnotationClipping
(0070,1A01)	CS	1	Presentation Animation Style		PresentationAnimationStyle
(0070,1A03)	FD	1	Recommended Animation Rate		RecommendedAnimationRate
(0070,1A04)	SQ	1	Animation Curve Sequence		AnimationCurveSequence
(0070,1A05)	FD	1	Animation Step Size		AnimationStepSize
(0070,1A06)	FD	1	Swivel Range		SwivelRange
(0070,1A07)	OD	1	Volumetric Curve Up Directions		VolumetricCurveUpDirections
(0070,1A08)	SQ	1	Volume Stream Sequence		VolumeStreamSequence
(0070,1A09)	LO	1	RGBA Transfer Function Description		RGBATransferFunctionDescription
(0070,1B01)	SQ	1	Advanced Blending Sequence		AdvancedBlendingSequence
(0070,1B02)	US	1	Blending Input Number		BlendingInputNumber
(0070,1B03)	SQ	1	Blending Display Input Sequence		BlendingDisplayInputSequence
(0070,1B04)	SQ	1	Blending Display Sequence		BlendingDisplaySequence
(0070,1B06)	CS	1	Blending Mode		BlendingMode
(0070,1B07)	CS	1	Time Series Blending		TimeSeriesBlending
(0070,1B08)	CS	1	Geometry for Display		GeometryForDisplay
(0070,1B11)	SQ	1	Threshold Sequence		ThresholdSequence
(0070,1B12)	SQ	1	Threshold Value Sequence		ThresholdValueSequence
(0070,1B13)	CS	1	Threshold Type		ThresholdType
(0070,1B14)	FD	1	Threshold Value		ThresholdValue
(0072,0002)	SH	1	Hanging Protocol Name		HangingProtocolName
(0072,0004)	LO	1	Hanging Protocol Description		HangingProtocolDescription
(0072,0006)	CS	1	Hanging Protocol Level		HangingProtocolLevel
(0072,0008)	LO	1	Hanging Protocol Creator		HangingProtocolCreator
(0072,000A)	DT	1	Hanging Protocol Creation DateTime		HangingProtocolCreationDateTime
(0072,000C)	SQ	1	Hanging Protocol Definition Sequence		HangingProtocolDefinitionSequence
(0072,000E)	SQ	1	Hanging Protocol User Identification Code Sequence		HangingProtocolUserIdentificationCodeSequence
(0072,0010)	LO	1	Hanging Protocol User Group Name		HangingProtocolUserGroupName
(0072,0012)	SQ	1	Source Hanging Protocol Sequence		SourceHangingProtocolSequence
(0072,0014)	US	1	Number of Priors Referenced		NumberOfPriorsReferenced
(0072,0020)	SQ	1	Image Sets Sequence		ImageSetsSequence
(0072,0022)	SQ	1	Image Set Selector Sequence		ImageSetSelectorSequence
(0072,0024)	CS	1	Image Set Selector Usage Flag		ImageSetSelectorUsageFlag
(0072,0026)	AT	1	Selector Attribute		SelectorAttribute
(0072,0028)	US	1	Selector Value Number		SelectorValueNumber
(0072,0030)	SQ	1	Time Based Image Sets Sequence		TimeBasedImageSetsSequence
(0072,0032)	US	1	Image Set Number		ImageSetNumber
(0072,0034)	CS	1	Image Set Selector Category		ImageSetSelectorCategory
(0072,0038)	US	2	Relative Time		RelativeTime
(0072,003A)	CS	1	Relative Time Units		RelativeTimeUnits
(0072,003C)	SS	2	Abstract Prior Value		AbstractPriorValue
(0072,003E)	SQ	1	Abstract Prior Code Sequence		AbstractPriorCodeSequence
(0072,0040)	LO	1	Image Set Label		ImageSetLabel
(0072,0050)	CS	1	Selector Attribute VR		SelectorAttributeVR
(0072,0052)	AT	1-n	Selector Sequence Pointer		SelectorSequencePointer
(0072,0054)	LO	1-n	Selector Sequence Pointer Private Creator		SelectorSequencePointerPrivateCreator
(0072,0056)	LO	1	Selector Attribute Private Creator		SelectorAttributePrivateCreator
(0072,005E)	AE	1-n	Selector AE Value		SelectorAEValue
(0072,005F)	AS	1-n	Selector AS Value		SelectorASValue
(0072,0060)	AT	1-n	Selector AT Value		SelectorATValue
(0072,0061)	DA	1-n	Selector DA Value		SelectorDAValue
(0072,0062)	CS	1-n	Selector CS Value		SelectorCSValue
(0072,0063)	DT	1-n	Selector DT Value		SelectorDTValue
(0072,0064)	IS	1-n	Selector IS Value		SelectorISValue
(0072,0065)	OB	1	Selector OB Value		SelectorOBValue
(0072,0066)	LO	1-n	Selector LO Value		SelectorLOValue
(0072,0067)	OF	1	Selector OF Value		SelectorOFValue
(0072,0068)	LT	1	Selector LT Value		SelectorLTValue
(0072,0069)	OW	1	Selector OW Value		SelectorOWValue
(0072,006A)	PN	1-n	Selector PN Value		SelectorPNValue
(0072,006B)	TM	1-n	Selector TM Value		SelectorTMValue
(0072,006C)	SH	1-n	Selector SH Value		SelectorSHValue
(0072,006D)	UN	1	Selector UN Value		SelectorUNValue
(0072,006E)	ST	1	Selector ST Value		SelectorSTValue
(0072,006F)	UC	1-n	Selector UC Value		SelectorUCValue
(0072,0070)	UT	1	Selector UT Value		SelectorUTValue
(0072,0071)	UR	1	Selector UR Value		SelectorURValue
(0072,0072)	DS	1-n	Selector DS Value		SelectorDSValue
(0072,0073)	OD	1	Selector OD Value		SelectorODValue
(0072,0074)	FD	1-n	Selector FD Value		SelectorFDValue
(0072,0075)	OL	1	Selector OL Value		SelectorOLValue
(0072,0076)	FL	1-n	Selector FL Value		SelectorFLValue
(0072,0078)	UL	1-n	Selector UL Value		SelectorULValue
(0072,007A)	US	1-n	Selector US Value		SelectorUSValue
(0072,007C)	SL	1-n	Selector SL Value		SelectorSLValue
(0072,007E)	SS	1-n	Selector SS Value		SelectorSSValue
(0072,007F)	UI	1-n	Selector UI Value		SelectorUIValue
(0072,0080)	SQ	1	Selector Code Sequence Value		SelectorCodeSequenceValue
(0072,0081)	OV	1	Selector OV Value		SelectorOVValue
(0072,0082)	SV	1-n	Selector SV Value		SelectorSVValue
(0072,0083)	UV	1-n	Selector UV Value		SelectorUVValue
(0072,0100)	US	1	Number of Screens		NumberOfScreens
(0072,0102)	SQ	1	Nominal Screen Definition Sequence		NominalScreenDefinitionSequence
(0072,0104)	US	1	Number of Vertical Pixels		NumberOfVerticalPixels
(0072,0106)	US	1	Number of Horizontal Pixels		NumberOfHorizontalPixels
(0072,0108)	FD	4	Display Environment Spatial Position		DisplayEnvironmentSpatialPosition
(0072,010A)	US	1	Screen Minimum Grayscale Bit Depth		ScreenMinimumGrayscaleBitDepth
(0072,010C)	US	1	Screen Minimum Color Bit Depth		ScreenMinimumColorBitDepth
(0072,010E)	US	1	Application Maximum Repaint Time		ApplicationMaximumRepaintTime
(0072,0200)	SQ	1	Display Sets Sequence		DisplaySetsSequence
(0072,0202)	US	1	Display Set Number		DisplaySetNumber
(0072,0203)	LO	1	Display Set Label		DisplaySetLabel
(0072,0204)	US	1	Display Set Presentation Group		DisplaySetPresentationGroup
(0072,0206)	LO	1	Display Set Presentation Group Description		DisplaySetPresentationGroupDescription
(0072,0208)	CS	1	Partial Data Display Handling		PartialDataDisplayHandling
(0072,0210)	SQ	1	Synchronized Scrolling Sequence		SynchronizedScrollingSequence
(0072,0212)	US	2-n	Display Set Scrolling Group		DisplaySetScrollingGroup
(0072,0214)	SQ	1	Navigation Indicator Sequence		NavigationIndicatorSequence
(0072,0216)	US	1	Navigation Display Set		NavigationDisplaySet
(0072,0218)	US	1-n	Reference Display Sets		ReferenceDisplaySets
(0072,0300)	SQ	1	Image Boxes Sequence		ImageBoxesSequence
(0072,0302)	US	1	Image Box Number		ImageBoxNumber
(0072,0304)	CS	1	Image Box Layout Type		ImageBoxLayoutType
(0072,0306)	US	1	Image Box Tile Horizontal Dimension		ImageBoxTileHorizontalDimension
(0072,0308)	US	1	Image Box Tile Vertical Dimension		ImageBoxTileVerticalDimension
(0072,0310)	CS	1	Image Box Scroll Direction		ImageBoxScrollDirection
(0072,0312)	CS	1	Image Box Small Scroll Type		ImageBoxSmallScrollType
(0072,0314)	US	1	Image Box Small Scroll Amount		ImageBoxSmallScrollAmount
(0072,0316)	CS	1	Image Box Large Scroll Type		ImageBoxLargeScrollType
(0072,0318)	US	1	Image Box Large Scroll Amount		ImageBoxLargeScrollAmount
(0072,0320)	US	1	Image Box Overlap Priority		ImageBoxOverlapPriority
(0072,0330)	FD	1	Cine Relative to Real-Time		CineRelativeToRealTime
(0072,0400)	SQ	1	Filter Operations Sequence		FilterOperationsSequence
(0072,0402)	CS	1	Filter-by Category		FilterByCategory
(0072,0404)	CS	1	Filter-by Attribute Presence		FilterByAttributePresence
(0072,0406)	CS	1	Filter-by Operator		FilterByOperator
(0072,0420)	US	3	Structured Display Background CIELab Value		StructuredDisplayBackgroundCIELabValue
(0072,0421)	US	3	Empty Image Box CIELab Value		EmptyImageBoxCIELabValue
(0072,0422)	SQ	1	Structured Display Image Box Sequence		StructuredDisplayImageBoxSequence
(0072,0424)	SQ	1	Structured Display Text Box Sequence		StructuredDisplayTextBoxSequence
(0072,0427)	SQ	1	Referenced First Frame Sequence		ReferencedFirstFrameSequence
(0072,0430)	SQ	1	Image Box Synchronization Sequence		ImageBoxSynchronizationSequence
(0072,0432)	US	2-n	Synchronized Image Box List		SynchronizedImageBoxList
(0072,0434)	CS	1	Type of Synchronization		TypeOfSynchronization
(0072,0500)	CS	1	Blending Operation Type		BlendingOperationType
(0072,0510)	CS	1	Reformatting Operation Type		ReformattingOperationType
(0072,0512)	FD	1	Reformatting Thickness		ReformattingThickness
(0072,0514)	FD	1	Reformatting Interval		ReformattingInterval
(0072,0516)	CS	1	Reformatting Operation Initial View Direction		ReformattingOperationInitialViewDirection
(0072,0520)	CS	1-n	3D Rendering Type		ThreeDRenderingType
(0072,0600)	SQ	1	Sorting Operations Sequence		SortingOperationsSequence
(0072,0602)	CS	1	Sort-by Category		SortByCategory
(0072,0604)	CS	1	Sorting Direction		SortingDirection
(0072,0700)	CS	2	Display Set Patient Orientation		DisplaySetPatientOrientation
(0072,0702)	CS	1	VOI Type		VOIType
(0072,0704)	CS	1	Pseudo-Color Type		PseudoColorType
(0072,0705)	SQ	1	Pseudo-Color Palette Instance Reference Sequence		PseudoColorPaletteInstanceReferenceSequence
(0072,0706)	CS	1	Show Grayscale Inverted		ShowGrayscaleInverted
(0072,0710)	CS	1	Show Image True Size Flag		ShowImageTrueSizeFlag
(0072,0712)	CS	1	Show Graphic Annotation Flag		ShowGraphicAnnotationFlag
(0072,0714)	CS	1	Show Patient Demographics Flag		ShowPatientDemographicsFlag
(0072,0716)	CS	1	Show Acquisition Techniques Flag		ShowAcquisitionTechniquesFlag
(0072,0717)	CS	1	Display Set Horizontal Justification		DisplaySetHorizontalJustification
(0072,0718)	CS	1	Display Set Vertical Justification		DisplaySetVerticalJustification
(0074,0120)	FD	1	Continuation Start Meterset		ContinuationStartMeterset
(0074,0121)	FD	1	Continuation End Meterset		ContinuationEndMeterset
(0074,1000)	CS	1	Procedure Step State		ProcedureStepState
(0074,1002)	SQ	1	Procedure Step Progress Information Sequence		ProcedureStepProgressInformationSequence
(0074,1004)	DS	1	Procedure Step Progress		ProcedureStepProgress
(0074,1006)	ST	1	Procedure Step Progress Description		ProcedureStepProgressDescription
(0074,1007)	SQ	1	Procedure Step Progress Parameters Sequence		ProcedureStepProgressParametersSequence
(0074,1008)	SQ	1	Procedure Step Communications URI Sequence		ProcedureStepCommunicationsURISequence
(0074,100A)	UR	1	Contact URI		ContactURI
(0074,100C)	LO	1	Contact Display Name		ContactDisplayName
(0074,100E)	SQ	1	Procedure Step Discontinuation Reason Code Sequence		ProcedureStepDiscontinuationReasonCodeSequence
(0074,1020)	SQ	1	Beam Task Sequence		BeamTaskSequence
(0074,1022)	CS	1	Beam Task Type		BeamTaskType
(0074,1024)	IS	1	Beam Order Index (Trial)	RET	BeamOrderIndexTrial
(0074,1025)	CS	1	Autosequence Flag		AutosequenceFlag
(0074,1026)	FD	1	Table Top Vertical Adjusted Position		TableTopVerticalAdjustedPosition
(0074,1027)	FD	1	Table Top Longitudinal Adjusted Position		TableTopLongitudinalAdjustedPosition
(0074,1028)	FD	1	Table Top Lateral Adjusted Position		TableTopLateralAdjustedPosition
(0074,102A)	FD	1	Patient Support Adjusted Angle		PatientSupportAdjustedAngle
(0074,102B)	FD	1	Table Top Eccentric Adjusted Angle		TableTopEccentricAdjustedAngle
(0074,102C)	FD	1	Table Top Pitch Adjusted Angle		TableTopPitchAdjustedAngle
(0074,102D)	FD	1	Table Top Roll Adjusted Angle		TableTopRollAdjustedAngle
(0074,1030)	SQ	1	Delivery Verification Image Sequence		DeliveryVerificationImageSequence
(0074,1032)	CS	1	Verification Image Timing		VerificationImageTiming
(0074,1034)	CS	1	Double Exposure Flag		DoubleExposureFlag
(0074,1036)	CS	1	Double Exposure Ordering		DoubleExposureOrdering
(0074,1038)	DS	1	Double Exposure Meterset (Trial)	RET	DoubleExposureMetersetTrial
(0074,103A)	DS	4	Double Exposure Field Delta (Trial)	RET	DoubleExposureFieldDeltaTrial
(0074,1040)	SQ	1	Related Reference RT Image Sequence		RelatedReferenceRTImageSequence
(0074,1042)	SQ	1	General Machine Verification Sequence		GeneralMachineVerificationSequence
(0074,1044)	SQ	1	Conventional Machine Verification Sequence		ConventionalMachineVerificationSequence
(0074,1046)	SQ	1	Ion Machine Verification Sequence		IonMachineVerificationSequence
(0074,1048)	SQ	1	Failed Attributes Sequence		FailedAttributesSequence
(0074,104A)	SQ	1	Overridden Attributes Sequence		OverriddenAttributesSequence
(0074,104C)	SQ	1	Conventional Control Point Verification Sequence		ConventionalControlPointVerificationSequence
(0074,104E)	SQ	1	Ion Control Point Verification Sequence		IonControlPointVerificationSequence
(0074,1050)	SQ	1	Attribute Occurrence Sequence		AttributeOccurrenceSequence
(0074,1052)	AT	1	Attribute Occurrence Pointer		AttributeOccurrencePointer
(0074,1054)	UL	1	Attribute Item Selector		AttributeItemSelector
(0074,1056)	LO	1	Attribute Occurrence Private Creator		AttributeOccurrencePrivateCreator
(0074,1057)	IS	1-n	Selector Sequence Pointer Items		SelectorSequencePointerItems
(0074,1200)	CS	1	Scheduled Procedure Step Priority		ScheduledProcedureStepPriority
(0074,1202)	LO	1	Worklist Label		WorklistLabel
(0074,1204)	LO	1	Procedure Step Label		ProcedureStepLabel
(0074,1210)	SQ	1	Scheduled Processing Parameters Sequence		ScheduledProcessingParametersSequence
(0074,1212)	SQ	1	Performed Processing Parameters Sequence		PerformedProcessingParametersSequence
(0074,1216)	SQ	1	Unified Procedure Step Performed Procedure Sequence		UnifiedProcedureStepPerformedProcedureSequence
(0074,1220)	SQ	1	Related Procedure Step Sequence	RET	RelatedProcedureStepSequence
(0074,1222)	LO	1	Procedure Step Relationship Type	RET	ProcedureStepRelationshipType
(0074,1224)	SQ	1	Replaced Procedure Step Sequence		ReplacedProcedureStepSequence
(0074,1230)	LO	1	Deletion Lock		DeletionLock
(0074,1234)	AE	1	Receiving AE		ReceivingAE
(0074,1236)	AE	1	Requesting AE		RequestingAE
(0074,1238)	LT	1	Reason for Cancellation		ReasonForCancellation
(0074,1242)	CS	1	SCP Status		SCPStatus
(0074,1244)	CS	1	Subscription List Status		SubscriptionListStatus
(0074,1246)	CS	1	Unified Procedure Step List Status		UnifiedProcedureStepListStatus
(0074,1324)	UL	1	Beam Order Index		BeamOrderIndex
(0074,1338)	FD	1	Double Exposure Meterset		DoubleExposureMeterset
(0074,133A)	FD	4	Double Exposure Field Delta		DoubleExposureFieldDelta
(0074,1401)	SQ	1	Brachy Task Sequence		BrachyTaskSequence
(0074,1402)	DS	1	Continuation Start Total Reference Air Kerma		ContinuationStartTotalReferenceAirKerma
(0074,1403)	DS	1	Continuation End Total Reference Air Kerma		ContinuationEndTotalReferenceAirKerma
(0074,1404)	IS	1	Continuation Pulse Number		ContinuationPulseNumber
(0074,1405)	SQ	1	Channel Delivery Order Sequence		ChannelDeliveryOrderSequence
(0074,1406)	IS	1	Referenced Channel Number		ReferencedChannelNumber
(0074,1407)	DS	1	Start Cumulative Time Weight		StartCumulativeTimeWeight
(0074,1408)	DS	1	End Cumulative Time Weight		EndCumulativeTimeWeight
(0074,1409)	SQ	1	Omitted Channel Sequence		OmittedChannelSequence
(0074,140A)	CS	1	Reason for Channel Omission		ReasonForChannelOmission
(0074,140B)	LO	1	Reason for Channel Omission Description		ReasonForChannelOmissionDescription
(0074,140C)	IS	1	Channel Delivery Order Index		ChannelDeliveryOrderIndex
(0074,140D)	SQ	1	Channel Delivery Continuation Sequence		ChannelDeliveryContinuationSequence
(0074,140E)	SQ	1	Omitted Application Setup Sequence		OmittedApplicationSetupSequence
(0076,0001)	LO	1	Implant Assembly Template Name		ImplantAssemblyTemplateName
(0076,0003)	LO	1	Implant Assembly Template Issuer		ImplantAssemblyTemplateIssuer
(0076,0006)	LO	1	Implant Assembly Template Version		ImplantAssemblyTemplateVersion
(0076,0008)	SQ	1	Replaced Implant Assembly Template Sequence		ReplacedImplantAssemblyTemplateSequence
(0076,000A)	CS	1	Implant Assembly Template Type		ImplantAssemblyTemplateType
(0076,000C)	SQ	1	Original Implant Assembly Template Sequence		OriginalImplantAssemblyTemplateSequence
(0076,000E)	SQ	1	Derivation Implant Assembly Template Sequence		DerivationImplantAssemblyTemplateSequence
(0076,0010)	SQ	1	Implant Assembly Template Target Anatomy Sequence		ImplantAssemblyTemplateTargetAnatomySequence
(0076,0020)	SQ	1	Procedure Type Code Sequence		ProcedureTypeCodeSequence
(0076,0030)	LO	1	Surgical Technique		SurgicalTechnique
(0076,0032)	SQ	1	Component Types Sequence		ComponentTypesSequence
(0076,0034)	SQ	1	Component Type Code Sequence		ComponentTypeCodeSequence
(0076,0036)	CS	1	Exclusive Component Type		ExclusiveComponentType
(0076,0038)	CS	1	Mandatory Component Type		MandatoryComponentType
(0076,0040)	SQ	1	Component Sequence		ComponentSequence
(0076,0055)	US	1	Component ID		ComponentID
(0076,0060)	SQ	1	Component Assembly Sequence		ComponentAssemblySequence
(0076,0070)	US	1	Component 1 Referenced ID		Component1ReferencedID
(0076,0080)	US	1	Component 1 Referenced Mating Feature Set ID		Component1ReferencedMatingFeatureSetID
(0076,0090)	US	1	Component 1 Referenced Mating Feature ID		Component1ReferencedMatingFeatureID
(0076,00A0)	US	1	Component 2 Referenced ID		Component2ReferencedID
(0076,00B0)	US	1	Component 2 Referenced Mating Feature Set ID		Component2ReferencedMatingFeatureSetID
(0076,00C0)	US	1	Component 2 Referenced Mating Feature ID		Component2ReferencedMatingFeatureID
(0078,0001)	LO	1	Implant Template Group Name		ImplantTemplateGroupName
(0078,0010)	ST	1	Implant Template Group Description		ImplantTemplateGroupDescription
(0078,0020)	LO	1	Implant Template Group Issuer		ImplantTemplateGroupIssuer
(0078,0024)	LO	1	Implant Template Group Version		ImplantTemplateGroupVersion
(0078,0026)	SQ	1	Replaced Implant Template Group Sequence		ReplacedImplantTemplateGroupSequence
(0078,0028)	SQ	1	Implant Template Group Target Anatomy Sequence		ImplantTemplateGroupTargetAnatomySequence
(0078,002A)	SQ	1	Implant Template Group Members Sequence		ImplantTemplateGroupMembersSequence
(0078,002E)	US	1	Implant Template Group Member ID		ImplantTemplateGroupMemberID
(0078,0050)	FD	3	3D Implant Template Group Member Matching Point		ThreeDImplantTemplateGroupMemberMatchingPoint
(0078,0060)	FD	9	3D Implant Template Group Member Matching Axes		ThreeDImplantTemplateGroupMemberMatchingAxes
(0078,0070)	SQ	1	Implant Template Group Member Matching 2D Coordinates Sequence		ImplantTemplateGroupMemberMatching2DCoordinatesSequence
(0078,0090)	FD	2	2D Implant Template Group Member Matching Point		TwoDImplantTemplateGroupMemberMatchingPoint
(0078,00A0)	FD	4	2D Implant Template Group Member Matching Axes		TwoDImplantTemplateGroupMemberMatchingAxes
(0078,00B0)	SQ	1	Implant Template Group Variation Dimension Sequence		ImplantTemplateGroupVariationDimensionSequence
(0078,00B2)	LO	1	Implant Template Group Variation Dimension Name		ImplantTemplateGroupVariationDimensionName
(0078,00B4)	SQ	1	Implant Template Group Variation Dimension Rank Sequence		ImplantTemplateGroupVariationDimensionRankSequence
(0078,00B6)	US	1	Referenced Implant Template Group Member ID		ReferencedImplantTemplateGroupMemberID
(0078,00B8)	US	1	Implant Template Group Variation Dimension Rank		ImplantTemplateGroupVariationDimensionRank
(0080,0001)	SQ	1	Surface Scan Acquisition Type Code Sequence		SurfaceScanAcquisitionTypeCodeSequence
(0080,0002)	SQ	1	Surface Scan Mode Code Sequence		SurfaceScanModeCodeSequence
(0080,0003)	SQ	1	Registration Method Code Sequence		RegistrationMethodCodeSequence
(0080,0004)	FD	1	Shot Duration Time		ShotDurationTime
(0080,0005)	FD	1	Shot Offset Time		ShotOffsetTime
(0080,0006)	US	1-n	Surface Point Presentation Value Data		SurfacePointPresentationValueData
(0080,0007)	US	3-3n	Surface Point Color CIELab Value Data		SurfacePointColorCIELabValueData
(0080,0008)	SQ	1	UV Mapping Sequence		UVMappingSequence
(0080,0009)	SH	1	Texture Label		TextureLabel
(0080,0010)	OF	1	U Value Data		UValueData
(0080,0011)	OF	1	V Value Data		VValueData
(0080,0012)	SQ	1	Referenced Texture Sequence		ReferencedTextureSequence
(0080,0013)	SQ	1	Referenced Surface Data Sequence		ReferencedSurfaceDataSequence
(0082,0001)	CS	1	Assessment Summary		AssessmentSummary
(0082,0003)	UT	1	Assessment Summary Description		AssessmentSummaryDescription
(0082,0004)	SQ	1	Assessed SOP Instance Sequence		AssessedSOPInstanceSequence
(0082,0005)	SQ	1	Referenced Comparison SOP Instance Sequence		ReferencedComparisonSOPInstanceSequence
(0082,0006)	UL	1	Number of Assessment Observations		NumberOfAssessmentObservations
(0082,0007)	SQ	1	Assessment Observations Sequence		AssessmentObservationsSequence
(0082,0008)	CS	1	Observation Significance		ObservationSignificance
(0082,000A)	UT	1	Observation Description		ObservationDescription
(0082,000C)	SQ	1	Structured Constraint Observation Sequence		StructuredConstraintObservationSequence
(0082,0010)	SQ	1	Assessed Attribute Value Sequence		AssessedAttributeValueSequence
(0082,0016)	LO	1	Assessment Set ID		AssessmentSetID
(0082,0017)	SQ	1	Assessment Requester Sequence		AssessmentRequesterSequence
(0082,0018)	LO	1	Selector Attribute Name		SelectorAttributeName
(0082,0019)	LO	1	Selector Attribute Keyword		SelectorAttributeKeyword
(0082,0021)	SQ	1	Assessment Type Code Sequence		AssessmentTypeCodeSequence
(0082,0022)	SQ	1	Observation Basis Code Sequence		ObservationBasisCodeSequence
(0082,0023)	LO	1	Assessment Label		AssessmentLabel
(0082,0032)	CS	1	Constraint Type		ConstraintType
(0082,0033)	UT	1	Specification Selection Guidance		SpecificationSelectionGuidance
(0082,0034)	SQ	1	Constraint Value Sequence		ConstraintValueSequence
(0082,0035)	SQ	1	Recommended Default Value Sequence		RecommendedDefaultValueSequence
(0082,0036)	CS	1	Constraint Violation Significance		ConstraintViolationSignificance
(0082,0037)	UT	1	Constraint Violation Condition		ConstraintViolationCondition
(0082,0038)	CS	1	Modifiable Constraint Flag		ModifiableConstraintFlag
(0088,0130)	SH	1	Storage Media File-set ID		StorageMediaFileSetID
(0088,0140)	UI	1	Storage Media File-set UID		StorageMediaFileSetUID
(0088,0200)	SQ	1	Icon Image Sequence		IconImageSequence
(0088,0904)	LO	1	Topic Title	RET	TopicTitle
(0088,0906)	ST	1	Topic Subject	RET	TopicSubject
(0088,0910)	LO	1	Topic Author	RET	TopicAuthor
(0088,0912)	LO	1-32	Topic Keywords	RET	TopicKeywords
(0100,0410)	CS	1	SOP Instance Status		SOPInstanceStatus
(0100,0420)	DT	1	SOP Authorization DateTime		SOPAuthorizationDateTime
(0100,0424)	LT	1	SOP Authorization Comment		SOPAuthorizationComment
(0100,0426)	LO	1	Authorization Equipment Certification Number		AuthorizationEquipmentCertificationNumber
(0400,0005)	US	1	MAC ID Number		MACIDNumber
(0400,0010)	UI	1	MAC Calculation Transfer Syntax UID		MACCalculationTransferSyntaxUID
(0400,0015)	CS	1	MAC Algorithm		MACAlgorithm
(0400,0020)	AT	1-n	Data Elements Signed		DataElementsSigned
(0400,0100)	UI	1	Digital Signature UID		DigitalSignatureUID
(0400,0105)	DT	1	Digital Signature DateTime		DigitalSignatureDateTime
(0400,0110)	CS	1	Certificate Type		CertificateType
(0400,0115)	OB	1	Certificate of Signer		CertificateOfSigner
(0400,0120)	OB	1	Signature		Signature
(0400,0305)	CS	1	Certified Timestamp Type		CertifiedTimestampType
(0400,0310)	OB	1	Certified Timestamp		CertifiedTimestamp
(0400,0401)	SQ	1	Digital Signature Purpose Code Sequence		DigitalSignaturePurposeCodeSequence
(0400,0402)	SQ	1	Referenced Digital Signature Sequence		ReferencedDigitalSignatureSequence
(0400,0403)	SQ	1	Referenced SOP Instance MAC Sequence		ReferencedSOPInstanceMACSequence
(0400,0404)	OB	1	MAC		MAC
(0400,0500)	SQ	1	Encrypted Attributes Sequence		EncryptedAttributesSequence
(0400,0510)	UI	1	Encrypted Content Transfer Syntax UID		EncryptedContentTransferSyntaxUID
(0400,0520)	OB	1	Encrypted Content		EncryptedContent
(0400,0550)	SQ	1	Modified Attributes Sequence		ModifiedAttributesSequence
(0400,0551)	SQ	1	Nonconforming Modified Attributes Sequence		NonconformingModifiedAttributesSequence
(0400,0552)	OB	1	Nonconforming Data Element Value		NonconformingDataElementValue
(0400,0561)	SQ	1	Original Attributes Sequence		OriginalAttributesSequence
(0400,0562)	DT	1	Attribute Modification DateTime		AttributeModificationDateTime
(0400,0563)	LO	1	Modifying System		ModifyingSystem
(0400,0564)	LO	1	Source of Previous Values		SourceOfPreviousValues
(0400,0565)	CS	1	Reason for the Attribute Modification		ReasonForTheAttributeModification
(0400,0600)	CS	1	Instance Origin Status		InstanceOriginStatus
(1000,0000)	US	3	Escape Triplet	RET	EscapeTriplet
(1000,0001)	US	3	Run Length Triplet	RET	RunLengthTriplet
(1000,0002)	US	1	Huffman Table Size	RET	HuffmanTableSize
(1000,0003)	US	3	Huffman Table Triplet	RET	HuffmanTableTriplet
(1000,0004)	US	1	Shift Table Size	RET	ShiftTableSize
(1000,0005)	US	3	Shift Table Triplet	RET	ShiftTableTriplet
(1010,0000)	US	1-n	Zonal Map	RET	ZonalMap
(2000,0010)	IS	1	Number of Copies		NumberOfCopies
(2000,001E)	SQ	1	Printer Configuration Sequence		PrinterConfigurationSequence
(2000,0020)	CS	1	Print Priority		PrintPriority
(2000,0030)	CS	1	Medium Type		MediumType
(2000,0040)	CS	1	Film Destination		FilmDestination
(2000,0050)	LO	1	Film Session Label		FilmSessionLabel
(2000,0060)	IS	1	Memory Allocation		MemoryAllocation
(2000,0061)	IS	1	Maximum Memory Allocation		MaximumMemoryAllocation
(2000,0062)	CS	1	Color Image Printing Flag	RET	ColorImagePrintingFlag
(2000,0063)	CS	1	Collation Flag	RET	CollationFlag
(2000,0065)	CS	1	Annotation Flag	RET	AnnotationFlag
(2000,0067)	CS	1	Image Overlay Flag	RET	ImageOverlayFlag
(2000,0069)	CS	1	Presentation LUT Flag	RET	PresentationLUTFlag
(2000,006A)	CS	1	Image Box Presentation LUT Flag	RET	ImageBoxPresentationLUTFlag
(2000,00A0)	US	1	Memory Bit Depth		MemoryBitDepth
(2000,00A1)	US	1	Printing Bit Depth		PrintingBitDepth
(2000,00A2)	SQ	1	Media Installed Sequence		MediaInstalledSequence
(2000,00A4)	SQ	1	Other Media Available Sequence		OtherMediaAvailableSequence
(2000,00A8)	SQ	1	Supported Image Display Formats Sequence		SupportedImageDisplayFormatsSequence
(2000,0500)	SQ	1	Referenced Film Box Sequence		ReferencedFilmBoxSequence
(2000,0510)	SQ	1	Referenced Stored Print Sequence	RET	ReferencedStoredPrintSequence
(2010,0010)	ST	1	Image Display Format		ImageDisplayFormat
(2010,0030)	CS	1	Annotation Display Format ID		AnnotationDisplayFormatID
(2010,0040)	CS	1	Film Orientation		FilmOrientation
(2010,0050)	CS	1	Film Size ID		FilmSizeID
(2010,0052)	CS	1	Printer Resolution ID		PrinterResolutionID
(2010,0054)	CS	1	Default Printer Resolution ID		DefaultPrinterResolutionID
(2010,0060)	CS	1	Magnification Type		MagnificationType
(2010,0080)	CS	1	Smoothing Type		SmoothingType
(2010,00A6)	CS	1	Default Magnification Type		DefaultMagnificationType
(2010,00A7)	CS	1-n	Other Magnification Types Available		OtherMagnificationTypesAvailable
(2010,00A8)	CS	1	Default Smoothing Type		DefaultSmoothingType
(2010,00A9)	CS	1-n	Other Smoothing Types Available		OtherSmoothingTypesAvailable
(2010,0100)	CS	1	Border Density		BorderDensity
(2010,0110)	CS	1	Empty Image Density		EmptyImageDensity
(2010,0120)	US	1	Min Density		MinDensity
(2010,0130)	US	1	Max Density		MaxDensity
(2010,0140)	CS	1	Trim		Trim
(2010,0150)	ST	1	Configuration Information		ConfigurationInformation
(2010,0152)	LT	1	Configuration Information Description		ConfigurationInformationDescription
(2010,0154)	IS	1	Maximum Collated Films		MaximumCollatedFilms
(2010,015E)	US	1	Illumination		Illumination
(2010,0160)	US	1	Reflected Ambient Light		ReflectedAmbientLight
(2010,0376)	DS	2	Printer Pixel Spacing		PrinterPixelSpacing
(2010,0500)	SQ	1	Referenced Film Session Sequence		ReferencedFilmSessionSequence
(2010,0510)	SQ	1	Referenced Image Box Sequence		ReferencedImageBoxSequence
(2010,0520)	SQ	1	Referenced Basic Annotation Box Sequence		ReferencedBasicAnnotationBoxSequence
(2020,0010)	US	1	Image Box Position		ImageBoxPosition
(2020,0020)	CS	1	Polarity		Polarity
(2020,0030)	DS	1	Requested Image Size		RequestedImageSize
(2020,0040)	CS	1	Requested Decimate/Crop Behavior		RequestedDecimateCropBehavior
(2020,0050)	CS	1	Requested Resolution ID		RequestedResolutionID
(2020,00A0)	CS	1	Requested Image Size Flag		RequestedImageSizeFlag
(2020,00A2)	CS	1	Decimate/Crop Result		DecimateCropResult
(2020,0110)	SQ	1	Basic Grayscale Image Sequence		BasicGrayscaleImageSequence
(2020,0111)	SQ	1	Basic Color Image Sequence		BasicColorImageSequence
(2020,0130)	SQ	1	Referenced Image Overlay Box Sequence	RET	ReferencedImageOverlayBoxSequence
(2020,0140)	SQ	1	Referenced VOI LUT Box Sequence	RET	ReferencedVOILUTBoxSequence
(2030,0010)	US	1	Annotation Position		AnnotationPosition
(2030,0020)	LO	1	Text String		TextString
(2040,0010)	SQ	1	Referenced Overlay Plane Sequence	RET	ReferencedOverlayPlaneSequence
(2040,0011)	US	1-99	Referenced Overlay Plane Groups	RET	ReferencedOverlayPlaneGroups
(2040,0020)	SQ	1	Overlay Pixel Data Sequence	RET	OverlayPixelDataSequence
(2040,0060)	CS	1	Overlay Magnification Type	RET	OverlayMagnificationType
(2040,0070)	CS	1	Overlay Smoothing Type	RET	OverlaySmoothingType
(2040,0072)	CS	1	Overlay or Image Magnification	RET	OverlayOrImageMagnification
(2040,0074)	US	1	Magnify to Number of Columns	RET	MagnifyToNumberOfColumns
(2040,0080)	CS	1	Overlay Foreground Density	RET	OverlayForegroundDensity
(2040,0082)	CS	1	Overlay Background Density	RET	OverlayBackgroundDensity
(2040,0090)	CS	1	Overlay Mode	RET	OverlayMode
(2040,0100)	CS	1	Threshold Density	RET	ThresholdDensity
(2040,0500)	SQ	1	Referenced Image Box Sequence (Retired)	RET	ReferencedImageBoxSequenceRetired
(2050,0010)	SQ	1	Presentation LUT Sequence		PresentationLUTSequence
(2050,0020)	CS	1	Presentation LUT Shape		PresentationLUTShape
(2050,0500)	SQ	1	Referenced Presentation LUT Sequence		ReferencedPresentationLUTSequence
(2100,0010)	SH	1	Print Job ID	RET	PrintJobID
(2100,0020)	CS	1	Execution Status		ExecutionStatus
(2100,0030)	CS	1	Execution Status Info		ExecutionStatusInfo
(2100,0040)	DA	1	Creation Date		CreationDate
(2100,0050)	TM	1	Creation Time		CreationTime
(2100,0070)	AE	1	Originator		Originator
(2100,0140)	AE	1	Destination AE		DestinationAE
(2100,0160)	SH	1	Owner ID		OwnerID
(2100,0170)	IS	1	Number of Films		NumberOfFilms
(2100,0500)	SQ	1	Referenced Print Job Sequence (Pull Stored Print)	RET	ReferencedPrintJobSequencePullStoredPrint
(2110,0010)	CS	1	Printer Status		PrinterStatus
(2110,0020)	CS	1	Printer Status Info		PrinterStatusInfo
(2110,0030)	LO	1	Printer Name		PrinterName
(2110,0099)	SH	1	Print Queue ID	RET	PrintQueueID
(2120,0010)	CS	1	Queue Status	RET	QueueStatus
(2120,0050)	SQ	1	Print Job Description Sequence	RET	PrintJobDescriptionSequence
(2120,0070)	SQ	1	Referenced Print Job Sequence	RET	ReferencedPrintJobSequence
(2130,0010)	SQ	1	Print Management Capabilities Sequence	RET	PrintManagementCapabilitiesSequence
(2130,0015)	SQ	1	Printer Characteristics Sequence	RET	PrinterCharacteristicsSequence
(2130,0030)	SQ	1	Film Box Content Sequence	RET	FilmBoxContentSequence
(2130,0040)	SQ	1	Image Box Content Sequence	RET	ImageBoxContentSequence
(2130,0050)	SQ	1	Annotation Content Sequence	RET	AnnotationContentSequence
(2130,0060)	SQ	1	Image Overlay Box Content Sequence	RET	ImageOverlayBoxContentSequence
(2130,0080)	SQ	1	Presentation LUT Content Sequence	RET	PresentationLUTContentSequence
(2130,00A0)	SQ	1	Proposed Study Sequence		ProposedStudySequence
(2130,00C0)	SQ	1	Original Image Sequence		OriginalImageSequence
(2200,0001)	CS	1	Label Using Information Extracted From Instances		LabelUsingInformationExtractedFromInstances
(2200,0002)	UT	1	Label Text		LabelText
(2200,0003)	CS	1	Label Style Selection		LabelStyleSelection
(2200,0004)	LT	1	Media Disposition		MediaDisposition
(2200,0005)	LT	1	Barcode Value		BarcodeValue
(2200,0006)	CS	1	Barcode Symbology		BarcodeSymbology
(2200,0007)	CS	1	Allow Media Splitting		AllowMediaSplitting
(2200,0008)	CS	1	Include Non-DICOM Objects		IncludeNonDICOMObjects
(2200,0009)	CS	1	Include Display Application		IncludeDisplayApplication
(2200,000A)	CS	1	Preserve Composite Instances After Media Creation		PreserveCompositeInstancesAfterMediaCreation
(2200,000B)	US	1	Total Number of Pieces of Media Created		TotalNumberOfPiecesOfMediaCreated
(2200,000C)	LO	1	Requested Media Application Profile		RequestedMediaApplicationProfile
(2200,000D)	SQ	1	Referenced Storage Media Sequence		ReferencedStorageMediaSequence
(2200,000E)	AT	1-n	Failure Attributes		FailureAttributes
(2200,000F)	CS	1	Allow Lossy Compression		AllowLossyCompression
(2200,0020)	CS	1	Request Priority		RequestPriority
(3002,0002)	SH	1	RT Image Label		RTImageLabel
(3002,0003)	LO	1	RT Image Name		RTImageName
(3002,0004)	ST	1	RT Image Description		RTImageDescription
(3002,000A)	CS	1	Reported Values Origin		ReportedValuesOrigin
(3002,000C)	CS	1	RT Image Plane		RTImagePlane
(3002,000D)	DS	3	X-Ray Image Receptor Translation		XRayImageReceptorTranslation
(3002,000E)	DS	1	X-Ray Image Receptor Angle		XRayImageReceptorAngle
(3002,0010)	DS	6	RT Image Orientation		RTImageOrientation
(3002,0011)	DS	2	Image Plane Pixel Spacing		ImagePlanePixelSpacing
(3002,0012)	DS	2	RT Image Position		RTImagePosition
(3002,0020)	SH	1	Radiation Machine Name		RadiationMachineName
(3002,0022)	DS	1	Radiation Machine SAD		RadiationMachineSAD
(3002,0024)	DS	1	Radiation Machine SSD		RadiationMachineSSD
(3002,0026)	DS	1	RT Image SID		RTImageSID
(3002,0028)	DS	1	Source to Reference Object Distance		SourceToReferenceObjectDistance
(3002,0029)	IS	1	Fraction Number		FractionNumber
(3002,0030)	SQ	1	Exposure Sequence		ExposureSequence
(3002,0032)	DS	1	Meterset Exposure		MetersetExposure
(3002,0034)	DS	4	Diaphragm Position		DiaphragmPosition
(3002,0040)	SQ	1	Fluence Map Sequence		FluenceMapSequence
(3002,0041)	CS	1	Fluence Data Source		FluenceDataSource
(3002,0042)	DS	1	Fluence Data Scale		FluenceDataScale
(3002,0050)	SQ	1	Primary Fluence Mode Sequence		PrimaryFluenceModeSequence
(3002,0051)	CS	1	Fluence Mode		FluenceMode
(3002,0052)	SH	1	Fluence Mode ID		FluenceModeID
(3002,0100)	IS	1	Selected Frame Number		SelectedFrameNumber
(3002,0101)	SQ	1	Selected Frame Functional Groups Sequence		SelectedFrameFunctionalGroupsSequence
(3002,0102)	SQ	1	RT Image Frame General Content Sequence		RTImageFrameGeneralContentSequence
(3002,0103)	SQ	1	RT Image Frame Context Sequence		RTImageFrameContextSequence
(3002,0104)	SQ	1	RT Image Scope Sequence		RTImageScopeSequence
(3002,0105)	CS	1	Beam Modifier Coordinates Presence Flag		BeamModifierCoordinatesPresenceFlag
(3002,0106)	FD	1	Start Cumulative Meterset		StartCumulativeMeterset
(3002,0107)	FD	1	Stop Cumulative Meterset		StopCumulativeMeterset
(3002,0108)	SQ	1	RT Acquisition Patient Position Sequence		RTAcquisitionPatientPositionSequence
(3002,0109)	SQ	1	RT Image Frame Imaging Device Position Sequence		RTImageFrameImagingDevicePositionSequence
(3002,010A)	SQ	1	RT Image Frame kV Radiation Acquisition Sequence		RTImageFramekVRadiationAcquisitionSequence
(3002,010B)	SQ	1	RT Image Frame MV Radiation Acquisition Sequence		RTImageFrameMVRadiationAcquisitionSequence
(3002,010C)	SQ	1	RT Image Frame Radiation Acquisition Sequence		RTImageFrameRadiationAcquisitionSequence
(3002,010D)	SQ	1	Imaging Source Position Sequence		ImagingSourcePositionSequence
(3002,010E)	SQ	1	Image Receptor Position Sequence		ImageReceptorPositionSequence
(3002,010F)	FD	16	Device Position to Equipment Mapping Matrix		DevicePositionToEquipmentMappingMatrix
(3002,0110)	SQ	1	Device Position Parameter Sequence		DevicePositionParameterSequence
(3002,0111)	CS	1	Imaging Source Location Specification Type		ImagingSourceLocationSpecificationType
(3002,0112)	SQ	1	Imaging Device Location Matrix Sequence		ImagingDeviceLocationMatrixSequence
(3002,0113)	SQ	1	Imaging Device Location Parameter Sequence		ImagingDeviceLocationParameterSequence
(3002,0114)	SQ	1	Imaging Aperture Sequence		ImagingApertureSequence
(3002,0115)	CS	1	Imaging Aperture Specification Type		ImagingApertureSpecificationType
(3002,0116)	US	1	Number of Acquisition Devices		NumberOfAcquisitionDevices
(3002,0117)	SQ	1	Acquisition Device Sequence		AcquisitionDeviceSequence
(3002,0118)	SQ	1	Acquisition Task Sequence		AcquisitionTaskSequence
(3002,0119)	SQ	1	Acquisition Task Workitem Code Sequence		AcquisitionTaskWorkitemCodeSequence
(3002,011A)	SQ	1	Acquisition Subtask Sequence		AcquisitionSubtaskSequence
(3002,011B)	SQ	1	Subtask Workitem Code Sequence		SubtaskWorkitemCodeSequence
(3002,011C)	US	1	Acquisition Task Index		AcquisitionTaskIndex
(3002,011D)	US	1	Acquisition Subtask Index		AcquisitionSubtaskIndex
(3002,011E)	SQ	1	Referenced Baseline Parameters RT Radiation Instance Sequence		ReferencedBaselineParametersRTRadiationInstanceSequence
(3002,011F)	SQ	1	Position Acquisition Template Identification Sequence		PositionAcquisitionTemplateIdentificationSequence
(3002,0120)	ST	1	Position Acquisition Template ID		PositionAcquisitionTemplateID
(3002,0121)	LO	1	Position Acquisition Template Name		PositionAcquisitionTemplateName
(3002,0122)	SQ	1	Position Acquisition Template Code Sequence		PositionAcquisitionTemplateCodeSequence
(3002,0123)	LT	1	Position Acquisition Template Description		PositionAcquisitionTemplateDescription
(3002,0124)	SQ	1	Acquisition Task Applicability Sequence		AcquisitionTaskApplicabilitySequence
(3002,0125)	SQ	1	Projection Imaging Acquisition Parameter Sequence		ProjectionImagingAcquisitionParameterSequence
(3002,0126)	SQ	1	CT Imaging Acquisition Parameter Sequence		CTImagingAcquisitionParameterSequence
(3002,0127)	SQ	1	KV Imaging Generation Parameters Sequence		KVImagingGenerationParametersSequence
(3002,0128)	SQ	1	MV Imaging Generation Parameters Sequence		MVImagingGenerationParametersSequence
(3002,0129)	CS	1	Acquisition Signal Type		AcquisitionSignalType
(3002,012A)	CS	1	Acquisition Method		AcquisitionMethod
(3002,012B)	SQ	1	Scan Start Position Sequence		ScanStartPositionSequence
(3002,012C)	SQ	1	Scan Stop Position Sequence		ScanStopPositionSequence
(3002,012D)	FD	1	Imaging Source to Beam Modifier Definition Plane Distance		ImagingSourceToBeamModifierDefinitionPlaneDistance
(3002,012E)	CS	1	Scan Arc Type		ScanArcType
(3002,012F)	CS	1	Detector Positioning Type		DetectorPositioningType
(3002,0130)	SQ	1	Additional RT Accessory Device Sequence		AdditionalRTAccessoryDeviceSequence
(3002,0131)	SQ	1	Device-Specific Acquisition Parameter Sequence		DeviceSpecificAcquisitionParameterSequence
(3002,0132)	SQ	1	Referenced Position Reference Instance Sequence		ReferencedPositionReferenceInstanceSequence
(3002,0133)	SQ	1	Energy Derivation Code Sequence		EnergyDerivationCodeSequence
(3002,0134)	FD	1	Maximum Cumulative Meterset Exposure		MaximumCumulativeMetersetExposure
(3002,0135)	SQ	1	Acquisition Initiation Sequence		AcquisitionInitiationSequence
(3004,0001)	CS	1	DVH Type		DVHType
(3004,0002)	CS	1	Dose Units		DoseUnits
(3004,0004)	CS	1	Dose Type		DoseType
(3004,0005)	CS	1	Spatial Transform of Dose		SpatialTransformOfDose
(3004,0006)	LO	1	Dose Comment		DoseComment
(3004,0008)	DS	3	Normalization Point		NormalizationPoint
(3004,000A)	CS	1	Dose Summation Type		DoseSummationType
(3004,000C)	DS	2-n	Grid Frame Offset Vector		GridFrameOffsetVector
(3004,000E)	DS	1	Dose Grid Scaling		DoseGridScaling
(3004,0010)	SQ	1	RT Dose ROI Sequence	RET	RTDoseROISequence
(3004,0012)	DS	1	Dose Value	RET	DoseValue
(3004,0014)	CS	1-3	Tissue Heterogeneity Correction		TissueHeterogeneityCorrection
(3004,0040)	DS	3	DVH Normalization Point		DVHNormalizationPoint
(3004,0042)	DS	1	DVH Normalization Dose Value		DVHNormalizationDoseValue
(3004,0050)	SQ	1	DVH Sequence		DVHSequence
(3004,0052)	DS	1	DVH Dose Scaling		DVHDoseScaling
(3004,0054)	CS	1	DVH Volume Units		DVHVolumeUnits
(3004,0056)	IS	1	DVH Number of Bins		DVHNumberOfBins
(3004,0058)	DS	2-2n	DVH Data		DVHData
(3004,0060)	SQ	1	DVH Referenced ROI Sequence		DVHReferencedROISequence
(3004,0062)	CS	1	DVH ROI Contribution Type		DVHROIContributionType
(3004,0070)	DS	1	DVH Minimum Dose		DVHMinimumDose
(3004,0072)	DS	1	DVH Maximum Dose		DVHMaximumDose
(3004,0074)	DS	1	DVH Mean Dose		DVHMeanDose
(3006,0002)	SH	1	Structure Set Label		StructureSetLabel
(3006,0004)	LO	1	Structure Set Name		StructureSetName
(3006,0006)	ST	1	Structure Set Description		StructureSetDescription
(3006,0008)	DA	1	Structure Set Date		StructureSetDate
(3006,0009)	TM	1	Structure Set Time		StructureSetTime
(3006,0010)	SQ	1	Referenced Frame of Reference Sequence		ReferencedFrameOfReferenceSequence
(3006,0012)	SQ	1	RT Referenced Study Sequence		RTReferencedStudySequence
(3006,0014)	SQ	1	RT Referenced Series Sequence		RTReferencedSeriesSequence
(3006,0016)	SQ	1	Contour Image Sequence		ContourImageSequence
(3006,0018)	SQ	1	Predecessor Structure Set Sequence		PredecessorStructureSetSequence
(3006,0020)	SQ	1	Structure Set ROI Sequence		StructureSetROISequence
(3006,0022)	IS	1	ROI Number		ROINumber
(3006,0024)	UI	1	Referenced Frame of Reference UID		ReferencedFrameOfReferenceUID
(3006,0026)	LO	1	ROI Name		ROIName
(3006,0028)	ST	1	ROI Description		ROIDescription
(3006,002A)	IS	3	ROI Display Color		ROIDisplayColor
(3006,002C)	DS	1	ROI Volume		ROIVolume
(3006,002D)	DT	1	ROI DateTime		ROIDateTime
(3006,002E)	DT	1	ROI Observation DateTime		ROIObservationDateTime
(3006,0030)	SQ	1	RT Related ROI Sequence		RTRelatedROISequence
(3006,0033)	CS	1	RT ROI Relationship		RTROIRelationship
(3006,0036)	CS	1	ROI Generation Algorithm		ROIGenerationAlgorithm
(3006,0037)	SQ	1	ROI Derivation Algorithm Identification Sequence		ROIDerivationAlgorithmIdentificationSequence
(3006,0038)	LO	1	ROI Generation Description		ROIGenerationDescription
(3006,0039)	SQ	1	ROI Contour Sequence		ROIContourSequence
(3006,0040)	SQ	1	Contour Sequence		ContourSequence
(3006,0042)	CS	1	Contour Geometric Type		ContourGeometricType
(3006,0044)	DS	1	Contour Slab Thickness	RET	ContourSlabThickness
(3006,0045)	DS	3	Contour Offset Vector	RET	ContourOffsetVector
(3006,0046)	IS	1	Number of Contour Points		NumberOfContourPoints
(3006,0048)	IS	1	Contour Number		ContourNumber
(3006,0049)	IS	1-n	Attached Contours	RET	AttachedContours
(3006,004A)	SQ	1	Source Pixel Planes Characteristics Sequence		SourcePixelPlanesCharacteristicsSequence
(3006,004B)	SQ	1	Source Series Sequence		SourceSeriesSequence
(3006,004C)	SQ	1	Source Series Information Sequence		SourceSeriesInformationSequence
(3006,004D)	SQ	1	ROI Creator Sequence		ROICreatorSequence
(3006,004E)	SQ	1	ROI Interpreter Sequence		ROIInterpreterSequence
(3006,004F)	SQ	1	ROI Observation Context Code Sequence		ROIObservationContextCodeSequence
(3006,0050)	DS	3-3n	Contour Data		ContourData
(3006,0080)	SQ	1	RT ROI Observations Sequence		RTROIObservationsSequence
(3006,0082)	IS	1	Observation Number		ObservationNumber
(3006,0084)	IS	1	Referenced ROI Number		ReferencedROINumber
(3006,0085)	SH	1	ROI Observation Label	RET	ROIObservationLabel
(3006,0086)	SQ	1	RT ROI Identification Code Sequence		RTROIIdentificationCodeSequence
(3006,0088)	ST	1	ROI Observation Description	RET	ROIObservationDescription
(3006,00A0)	SQ	1	Related RT ROI Observations Sequence		RelatedRTROIObservationsSequence
(3006,00A4)	CS	1	RT ROI Interpreted Type		RTROIInterpretedType
(3006,00A6)	PN	1	ROI Interpreter		ROIInterpreter
(3006,00B0)	SQ	1	ROI Physical Properties Sequence		ROIPhysicalPropertiesSequence
(3006,00B2)	CS	1	ROI Physical Property		ROIPhysicalProperty
(3006,00B4)	DS	1	ROI Physical Property Value		ROIPhysicalPropertyValue
(3006,00B6)	SQ	1	ROI Elemental Composition Sequence		ROIElementalCompositionSequence
(3006,00B7)	US	1	ROI Elemental Composition Atomic Number		ROIElementalCompositionAtomicNumber
(3006,00B8)	FL	1	ROI Elemental Composition Atomic Mass Fraction		ROIElementalCompositionAtomicMassFraction
(3006,00B9)	SQ	1	Additional RT ROI Identification Code Sequence	RET	AdditionalRTROIIdentificationCodeSequence
(3006,00C0)	SQ	1	Frame of Reference Relationship Sequence	RET	FrameOfReferenceRelationshipSequence
(3006,00C2)	UI	1	Related Frame of Reference UID	RET	RelatedFrameOfReferenceUID
(3006,00C4)	CS	1	Frame of Reference Transformation Type	RET	FrameOfReferenceTransformationType
(3006,00C6)	DS	16	Frame of Reference Transformation Matrix		FrameOfReferenceTransformationMatrix
(3006,00C8)	LO	1	Frame of Reference Transformation Comment		FrameOfReferenceTransformationComment
(3006,00C9)	SQ	1	Patient Location Coordinates Sequence		PatientLocationCoordinatesSequence
(3006,00CA)	SQ	1	Patient Location Coordinates Code Sequence		PatientLocationCoordinatesCodeSequence
(3006,00CB)	SQ	1	Patient Support Position Sequence		PatientSupportPositionSequence
(3008,0010)	SQ	1	Measured Dose Reference Sequence		MeasuredDoseReferenceSequence
(3008,0012)	ST	1	Measured Dose Description		MeasuredDoseDescription
(3008,0014)	CS	1	Measured Dose Type		MeasuredDoseType
(3008,0016)	DS	1	Measured Dose Value		MeasuredDoseValue
(3008,0020)	SQ	1	Treatment Session Beam Sequence		TreatmentSessionBeamSequence
(3008,0021)	SQ	1	Treatment Session Ion Beam Sequence		TreatmentSessionIonBeamSequence
(3008,0022)	IS	1	Current Fraction Number		CurrentFractionNumber
(3008,0024)	DA	1	Treatment Control Point Date		TreatmentControlPointDate
(3008,0025)	TM	1	Treatment Control Point Time		TreatmentControlPointTime
(3008,002A)	CS	1	Treatment Termination Status		TreatmentTerminationStatus
(3008,002B)	SH	1	Treatment Termination Code	RET	TreatmentTerminationCode
(3008,002C)	CS	1	Treatment Verification Status		TreatmentVerificationStatus
(3008,0030)	SQ	1	Referenced Treatment Record Sequence		ReferencedTreatmentRecordSequence
(3008,0032)	DS	1	Specified Primary Meterset		SpecifiedPrimaryMeterset
(3008,0033)	DS	1	Specified Secondary Meterset		SpecifiedSecondaryMeterset
(3008,0036)	DS	1	Delivered Primary Meterset		DeliveredPrimaryMeterset
(3008,0037)	DS	1	Delivered Secondary Meterset		DeliveredSecondaryMeterset
(3008,003A)	DS	1	Specified Treatment Time		SpecifiedTreatmentTime
(3008,003B)	DS	1	Delivered Treatment Time		DeliveredTreatmentTime
(3008,0040)	SQ	1	Control Point Delivery Sequence		ControlPointDeliverySequence
(3008,0041)	SQ	1	Ion Control Point Delivery Sequence		IonControlPointDeliverySequence
(3008,0042)	DS	1	Specified Meterset		SpecifiedMeterset
(3008,0044)	DS	1	Delivered Meterset		DeliveredMeterset
(3008,0045)	FL	1	Meterset Rate Set		MetersetRateSet
(3008,0046)	FL	1	Meterset Rate Delivered		MetersetRateDelivered
(3008,0047)	FL	1-n	Scan Spot Metersets Delivered		ScanSpotMetersetsDelivered
(3008,0048)	DS	1	Dose Rate Delivered		DoseRateDelivered
(3008,0050)	SQ	1	Treatment Summary Calculated Dose Reference Sequence		TreatmentSummaryCalculatedDoseReferenceSequence
(3008,0052)	DS	1	Cumulative Dose to Dose Reference		CumulativeDoseToDoseReference
(3008,0054)	DA	1	First Treatment Date		FirstTreatmentDate
(3008,0056)	DA	1	Most Recent Treatment Date		MostRecentTreatmentDate
(3008,005A)	IS	1	Number of Fractions Delivered		NumberOfFractionsDelivered
(3008,0060)	SQ	1	Override Sequence		OverrideSequence
(3008,0061)	AT	1	Parameter Sequence Pointer		ParameterSequencePointer
(3008,0062)	AT	1	Override Parameter Pointer		OverrideParameterPointer
(3008,0063)	IS	1	Parameter Item Index		ParameterItemIndex
(3008,0064)	IS	1	Measured Dose Reference Number		MeasuredDoseReferenceNumber
(3008,0065)	AT	1	Parameter Pointer		ParameterPointer
(3008,0066)	ST	1	Override Reason		OverrideReason
(3008,0067)	US	1	Parameter Value Number		ParameterValueNumber
(3008,0068)	SQ	1	Corrected Parameter Sequence		CorrectedParameterSequence
(3008,006A)	FL	1	Correction Value		CorrectionValue
(3008,0070)	SQ	1	Calculated Dose Reference Sequence		CalculatedDoseReferenceSequence
(3008,0072)	IS	1	Calculated Dose Reference Number		CalculatedDoseReferenceNumber
(3008,0074)	ST	1	Calculated Dose Reference Description		CalculatedDoseReferenceDescription
(3008,0076)	DS	1	Calculated Dose Reference Dose Value		CalculatedDoseReferenceDoseValue
(3008,0078)	DS	1	Start Meterset		StartMeterset
(3008,007A)	DS	1	End Meterset		EndMeterset
(3008,0080)	SQ	1	Referenced Measured Dose Reference Sequence		ReferencedMeasuredDoseReferenceSequence
(3008,0082)	IS	1	Referenced Measured Dose Reference Number		ReferencedMeasuredDoseReferenceNumber
(3008,0090)	SQ	1	Referenced Calculated Dose Reference Sequence		ReferencedCalculatedDoseReferenceSequence
(3008,0092)	IS	1	Referenced Calculated Dose Reference Number		ReferencedCalculatedDoseReferenceNumber
(3008,00A0)	SQ	1	Beam Limiting Device Leaf Pairs Sequence		BeamLimitingDeviceLeafPairsSequence
(3008,00A1)	SQ	1	Enhanced RT Beam Limiting Device Sequence		EnhancedRTBeamLimitingDeviceSequence
(3008,00A2)	SQ	1	Enhanced RT Beam Limiting Opening Sequence		EnhancedRTBeamLimitingOpeningSequence
(3008,00A3)	CS	1	Enhanced RT Beam Limiting Device Definition Flag		EnhancedRTBeamLimitingDeviceDefinitionFlag
(3008,00A4)	FD	2-2n	Parallel RT Beam Delimiter Opening Extents		ParallelRTBeamDelimiterOpeningExtents
(3008,00B0)	SQ	1	Recorded Wedge Sequence		RecordedWedgeSequence
(3008,00C0)	SQ	1	Recorded Compensator Sequence		RecordedCompensatorSequence
(3008,00D0)	SQ	1	Recorded Block Sequence		RecordedBlockSequence
(3008,00D1)	SQ	1	Recorded Block Slab Sequence		RecordedBlockSlabSequence
(3008,00E0)	SQ	1	Treatment Summary Measured Dose Reference Sequence		TreatmentSummaryMeasuredDoseReferenceSequence
(3008,00F0)	SQ	1	Recorded Snout Sequence		RecordedSnoutSequence
(3008,00F2)	SQ	1	Recorded Range Shifter Sequence		RecordedRangeShifterSequence
(3008,00F4)	SQ	1	Recorded Lateral Spreading Device Sequence		RecordedLateralSpreadingDeviceSequence
(3008,00F6)	SQ	1	Recorded Range Modulator Sequence		RecordedRangeModulatorSequence
(3008,0100)	SQ	1	Recorded Source Sequence		RecordedSourceSequence
(3008,0105)	LO	1	Source Serial Number		SourceSerialNumber
(3008,0110)	SQ	1	Treatment Session Application Setup Sequence		TreatmentSessionApplicationSetupSequence
(3008,0116)	CS	1	Application Setup Check		ApplicationSetupCheck
(3008,0120)	SQ	1	Recorded Brachy Accessory Device Sequence		RecordedBrachyAccessoryDeviceSequence
(3008,0122)	IS	1	Referenced Brachy Accessory Device Number		ReferencedBrachyAccessoryDeviceNumber
(3008,0130)	SQ	1	Recorded Channel Sequence		RecordedChannelSequence
(3008,0132)	DS	1	Specified Channel Total Time		SpecifiedChannelTotalTime
(3008,0134)	DS	1	Delivered Channel Total Time		DeliveredChannelTotalTime
(3008,0136)	IS	1	Specified Number of Pulses		SpecifiedNumberOfPulses
(3008,0138)	IS	1	Delivered Number of Pulses		DeliveredNumberOfPulses
(3008,013A)	DS	1	Specified Pulse Repetition Interval		SpecifiedPulseRepetitionInterval
(3008,013C)	DS	1	Delivered Pulse Repetition Interval		DeliveredPulseRepetitionInterval
(3008,0140)	SQ	1	Recorded Source Applicator Sequence		RecordedSourceApplicatorSequence
(3008,0142)	IS	1	Referenced Source Applicator Number		ReferencedSourceApplicatorNumber
(3008,0150)	SQ	1	Recorded Channel Shield Sequence		RecordedChannelShieldSequence
(3008,0152)	IS	1	Referenced Channel Shield Number		ReferencedChannelShieldNumber
(3008,0160)	SQ	1	Brachy Control Point Delivered Sequence		BrachyControlPointDeliveredSequence
(3008,0162)	DA	1	Safe Position Exit Date		SafePositionExitDate
(3008,0164)	TM	1	Safe Position Exit Time		SafePositionExitTime
(3008,0166)	DA	1	Safe Position Return Date		SafePositionReturnDate
(3008,0168)	TM	1	Safe Position Return Time		SafePositionReturnTime
(3008,0171)	SQ	1	Pulse Specific Brachy Control Point Delivered Sequence		PulseSpecificBrachyControlPointDeliveredSequence
(3008,0172)	US	1	Pulse Number		PulseNumber
(3008,0173)	SQ	1	Brachy Pulse Control Point Delivered Sequence		BrachyPulseControlPointDeliveredSequence
(3008,0200)	CS	1	Current Treatment Status		CurrentTreatmentStatus
(3008,0202)	ST	1	Treatment Status Comment		TreatmentStatusComment
(3008,0220)	SQ	1	Fraction Group Summary Sequence		FractionGroupSummarySequence
(3008,0223)	IS	1	Referenced Fraction Number		ReferencedFractionNumber
(3008,0224)	CS	1	Fraction Group Type		FractionGroupType
(3008,0230)	CS	1	Beam Stopper Position		BeamStopperPosition
(3008,0240)	SQ	1	Fraction Status Summary Sequence		FractionStatusSummarySequence
(3008,0250)	DA	1	Treatment Date		TreatmentDate
(3008,0251)	TM	1	Treatment Time		TreatmentTime
(300A,0002)	SH	1	RT Plan Label		RTPlanLabel
(300A,0003)	LO	1	RT Plan Name		RTPlanName
(300A,0004)	ST	1	RT Plan Description		RTPlanDescription
(300A,0006)	DA	1	RT Plan Date		RTPlanDate
(300A,0007)	TM	1	RT Plan Time		RTPlanTime
(300A,0009)	LO	1-n	Treatment Protocols		TreatmentProtocols
(300A,000A)	CS	1	Plan Intent		PlanIntent
(300A,000B)	LO	1-n	Treatment Sites	RET	TreatmentSites
(300A,000C)	CS	1	RT Plan Geometry		RTPlanGeometry
(300A,000E)	ST	1	Prescription Description		PrescriptionDescription
(300A,0010)	SQ	1	Dose Reference Sequence		DoseReferenceSequence
(300A,0012)	IS	1	Dose Reference Number		DoseReferenceNumber
(300A,0013)	UI	1	Dose Reference UID		DoseReferenceUID
(300A,0014)	CS	1	Dose Reference Structure Type		DoseReferenceStructureType
(300A,0015)	CS	1	Nominal Beam Energy Unit		NominalBeamEnergyUnit
(300A,0016)	LO	1	Dose Reference Description		DoseReferenceDescription
(300A,0018)	DS	3	Dose Reference Point Coordinates		DoseReferencePointCoordinates
(300A,001A)	DS	1	Nominal Prior Dose		NominalPriorDose
(300A,0020)	CS	1	Dose Reference Type		DoseReferenceType
(300A,0021)	DS	1	Constraint Weight		ConstraintWeight
(300A,0022)	DS	1	Delivery Warning Dose		DeliveryWarningDose
(300A,0023)	DS	1	Delivery Maximum Dose		DeliveryMaximumDose
(300A,0025)	DS	1	Target Minimum Dose		TargetMinimumDose
(300A,0026)	DS	1	Target Prescription Dose		TargetPrescriptionDose
(300A,0027)	DS	1	Target Maximum Dose		TargetMaximumDose
(300A,0028)	DS	1	Target Underdose Volume Fraction		TargetUnderdoseVolumeFraction
(300A,002A)	DS	1	Organ at Risk Full-volume Dose		OrganAtRiskFullVolumeDose
(300A,002B)	DS	1	Organ at Risk Limit Dose		OrganAtRiskLimitDose
(300A,002C)	DS	1	Organ at Risk Maximum Dose		OrganAtRiskMaximumDose
(300A,002D)	DS	1	Organ at Risk Overdose Volume Fraction		OrganAtRiskOverdoseVolumeFraction
(300A,0040)	SQ	1	Tolerance Table Sequence		ToleranceTableSequence
(300A,0042)	IS	1	Tolerance Table Number		ToleranceTableNumber
(300A,0043)	SH	1	Tolerance Table Label		ToleranceTableLabel
(300A,0044)	DS	1	Gantry Angle Tolerance		GantryAngleTolerance
(300A,0046)	DS	1	Beam Limiting Device Angle Tolerance		BeamLimitingDeviceAngleTolerance
(300A,0048)	SQ	1	Beam Limiting Device Tolerance Sequence		BeamLimitingDeviceToleranceSequence
(300A,004A)	DS	1	Beam Limiting Device Position Tolerance		BeamLimitingDevicePositionTolerance
(300A,004B)	FL	1	Snout Position Tolerance		SnoutPositionTolerance
(300A,004C)	DS	1	Patient Support Angle Tolerance		PatientSupportAngleTolerance
(300A,004E)	DS	1	Table Top Eccentric Angle Tolerance		TableTopEccentricAngleTolerance
(300A,004F)	FL	1	Table Top Pitch Angle Tolerance		TableTopPitchAngleTolerance
(300A,0050)	FL	1	Table Top Roll Angle Tolerance		TableTopRollAngleTolerance
(300A,0051)	DS	1	Table Top Vertical Position Tolerance		TableTopVerticalPositionTolerance
(300A,0052)	DS	1	Table Top Longitudinal Position Tolerance		TableTopLongitudinalPositionTolerance
(300A,0053)	DS	1	Table Top Lateral Position Tolerance		TableTopLateralPositionTolerance
(300A,0055)	CS	1	RT Plan Relationship		RTPlanRelationship
(300A,0070)	SQ	1	Fraction Group Sequence		FractionGroupSequence
(300A,0071)	IS	1	Fraction Group Number		FractionGroupNumber
(300A,0072)	LO	1	Fraction Group Description		FractionGroupDescription
(300A,0078)	IS	1	Number of Fractions Planned		NumberOfFractionsPlanned
(300A,0079)	IS	1	Number of Fraction Pattern Digits Per Day		NumberOfFractionPatternDigitsPerDay
(300A,007A)	IS	1	Repeat Fraction Cycle Length		RepeatFractionCycleLength
(300A,007B)	LT	1	Fraction Pattern		FractionPattern
(300A,0080)	IS	1	Number of Beams		NumberOfBeams
(300A,0082)	DS	3	Beam Dose Specification Point	RET	BeamDoseSpecificationPoint
(300A,0083)	UI	1	Referenced Dose Reference UID		ReferencedDoseReferenceUID
(300A,0084)	DS	1	Beam Dose		BeamDose
(300A,0086)	DS	1	Beam Meterset		BeamMeterset
(300A,0088)	FL	1	Beam Dose Point Depth		BeamDosePointDepth
(300A,0089)	FL	1	Beam Dose Point Equivalent Depth		BeamDosePointEquivalentDepth
(300A,008A)	FL	1	Beam Dose Point SSD		BeamDosePointSSD
(300A,008B)	CS	1	Beam Dose Meaning		BeamDoseMeaning
(300A,008C)	SQ	1	Beam Dose Verification Control Point Sequence		BeamDoseVerificationControlPointSequence
(300A,008D)	FL	1	Average Beam Dose Point Depth	RET	AverageBeamDosePointDepth
(300A,008E)	FL	1	Average Beam Dose Point Equivalent Depth	RET	AverageBeamDosePointEquivalentDepth
(300A,008F)	FL	1	Average Beam Dose Point SSD	RET	AverageBeamDosePointSSD
(300A,0090)	CS	1	Beam Dose Type		BeamDoseType
(300A,0091)	DS	1	Alternate Beam Dose		AlternateBeamDose
(300A,0092)	CS	1	Alternate Beam Dose Type		AlternateBeamDoseType
(300A,0093)	CS	1	Depth Value Averaging Flag		DepthValueAveragingFlag
(300A,0094)	DS	1	Beam Dose Point Source to External Contour Distance		BeamDosePointSourceToExternalContourDistance
(300A,00A0)	IS	1	Number of Brachy Application Setups		NumberOfBrachyApplicationSetups
(300A,00A2)	DS	3	Brachy Application Setup Dose Specification Point		BrachyApplicationSetupDoseSpecificationPoint
(300A,00A4)	DS	1	Brachy Application Setup Dose		BrachyApplicationSetupDose
(300A,00B0)	SQ	1	Beam Sequence		BeamSequence
(300A,00B2)	SH	1	Treatment Machine Name		TreatmentMachineName
(300A,00B3)	CS	1	Primary Dosimeter Unit		PrimaryDosimeterUnit
(300A,00B4)	DS	1	Source-Axis Distance		SourceAxisDistance
(300A,00B6)	SQ	1	Beam Limiting Device Sequence		BeamLimitingDeviceSequence
(300A,00B8)	CS	1	RT Beam Limiting Device Type		RTBeamLimitingDeviceType
(300A,00BA)	DS	1	Source to Beam Limiting Device Distance		SourceToBeamLimitingDeviceDistance
(300A,00BB)	FL	1	Isocenter to Beam Limiting Device Distance		IsocenterToBeamLimitingDeviceDistance
(300A,00BC)	IS	1	Number of Leaf/Jaw Pairs		NumberOfLeafJawPairs
(300A,00BE)	DS	3-n	Leaf Position Boundaries		LeafPositionBoundaries
(300A,00C0)	IS	1	Beam Number		BeamNumber
(300A,00C2)	LO	1	Beam Name		BeamName
(300A,00C3)	ST	1	Beam Description		BeamDescription
(300A,00C4)	CS	1	Beam Type		BeamType
(300A,00C5)	FD	1	Beam Delivery Duration Limit		BeamDeliveryDurationLimit
(300A,00C6)	CS	1	Radiation Type		RadiationType
(300A,00C7)	CS	1	High-Dose Technique Type		HighDoseTechniqueType
(300A,00C8)	IS	1	Reference Image Number		ReferenceImageNumber
(300A,00CA)	SQ	1	Planned Verification Image Sequence		PlannedVerificationImageSequence
(300A,00CC)	LO	1-n	Imaging Device-Specific Acquisition Parameters		ImagingDeviceSpecificAcquisitionParameters
(300A,00CE)	CS	1	Treatment Delivery Type		TreatmentDeliveryType
(300A,00D0)	IS	1	Number of Wedges		NumberOfWedges
(300A,00D1)	SQ	1	Wedge Sequence		WedgeSequence
(300A,00D2)	IS	1	Wedge Number		WedgeNumber
(300A,00D3)	CS	1	Wedge Type		WedgeType
(300A,00D4)	SH	1	Wedge ID		WedgeID
(300A,00D5)	IS	1	Wedge Angle		WedgeAngle
(300A,00D6)	DS	1	Wedge Factor		WedgeFactor
(300A,00D7)	FL	1	Total Wedge Tray Water-Equivalent Thickness		TotalWedgeTrayWaterEquivalentThickness
(300A,00D8)	DS	1	Wedge Orientation		WedgeOrientation
(300A,00D9)	FL	1	Isocenter to Wedge Tray Distance		IsocenterToWedgeTrayDistance
(300A,00DA)	DS	1	Source to Wedge Tray Distance		SourceToWedgeTrayDistance
(300A,00DB)	FL	1	Wedge Thin Edge Position		WedgeThinEdgePosition
(300A,00DC)	SH	1	Bolus ID		BolusID
(300A,00DD)	ST	1	Bolus Description		BolusDescription
(300A,00DE)	DS	1	Effective Wedge Angle		EffectiveWedgeAngle
(300A,00E0)	IS	1	Number of Compensators		NumberOfCompensators
(300A,00E1)	SH	1	Material ID		MaterialID
(300A,00E2)	DS	1	Total Compensator Tray Factor		TotalCompensatorTrayFactor
(300A,00E3)	SQ	1	Compensator Sequence		CompensatorSequence
(300A,00E4)	IS	1	Compensator Number		CompensatorNumber
(300A,00E5)	SH	1	Compensator ID		CompensatorID
(300A,00E6)	DS	1	Source to Compensator Tray Distance		SourceToCompensatorTrayDistance
(300A,00E7)	IS	1	Compensator Rows		CompensatorRows
(300A,00E8)	IS	1	Compensator Columns		CompensatorColumns
(300A,00E9)	DS	2	Compensator Pixel Spacing		CompensatorPixelSpacing
(300A,00EA)	DS	2	Compensator Position		CompensatorPosition
(300A,00EB)	DS	1-n	Compensator Transmission Data		CompensatorTransmissionData
(300A,00EC)	DS	1-n	Compensator Thickness Data		CompensatorThicknessData
(300A,00ED)	IS	1	Number of Boli		NumberOfBoli
(300A,00EE)	CS	1	Compensator Type		CompensatorType
(300A,00EF)	SH	1	Compensator Tray ID		CompensatorTrayID
(300A,00F0)	IS	1	Number of Blocks		NumberOfBlocks
(300A,00F2)	DS	1	Total Block Tray Factor		TotalBlockTrayFactor
(300A,00F3)	FL	1	Total Block Tray Water-Equivalent Thickness		TotalBlockTrayWaterEquivalentThickness
(300A,00F4)	SQ	1	Block Sequence		BlockSequence
(300A,00F5)	SH	1	Block Tray ID		BlockTrayID
(300A,00F6)	DS	1	Source to Block Tray Distance		SourceToBlockTrayDistance
(300A,00F7)	FL	1	Isocenter to Block Tray Distance		IsocenterToBlockTrayDistance
(300A,00F8)	CS	1	Block Type		BlockType
(300A,00F9)	LO	1	Accessory Code		AccessoryCode
(300A,00FA)	CS	1	Block Divergence		BlockDivergence
(300A,00FB)	CS	1	Block Mounting Position		BlockMountingPosition
(300A,00FC)	IS	1	Block Number		BlockNumber
(300A,00FE)	LO	1	Block Name		BlockName
(300A,0100)	DS	1	Block Thickness		BlockThickness
(300A,0102)	DS	1	Block Transmission		BlockTransmission
(300A,0104)	IS	1	Block Number of Points		BlockNumberOfPoints
(300A,0106)	DS	2-2n	Block Data		BlockData
(300A,0107)	SQ	1	Applicator Sequence		ApplicatorSequence
(300A,0108)	SH	1	Applicator ID		ApplicatorID
(300A,0109)	CS	1	Applicator Type		ApplicatorType
(300A,010A)	LO	1	Applicator Description		ApplicatorDescription
(300A,010C)	DS	1	Cumulative Dose Reference Coefficient		CumulativeDoseReferenceCoefficient
(300A,010E)	DS	1	Final Cumulative Meterset Weight		FinalCumulativeMetersetWeight
(300A,0110)	IS	1	Number of Control Points		NumberOfControlPoints
(300A,0111)	SQ	1	Control Point Sequence		ControlPointSequence
(300A,0112)	IS	1	Control Point Index		ControlPointIndex
(300A,0114)	DS	1	Nominal Beam Energy		NominalBeamEnergy
(300A,0115)	DS	1	Dose Rate Set		DoseRateSet
(300A,0116)	SQ	1	Wedge Position Sequence		WedgePositionSequence
(300A,0118)	CS	1	Wedge Position		WedgePosition
(300A,011A)	SQ	1	Beam Limiting Device Position Sequence		BeamLimitingDevicePositionSequence
(300A,011C)	DS	2-2n	Leaf/Jaw Positions		LeafJawPositions
(300A,011E)	DS	1	Gantry Angle		GantryAngle
(300A,011F)	CS	1	Gantry Rotation Direction		GantryRotationDirection
(300A,0120)	DS	1	Beam Limiting Device Angle		BeamLimitingDeviceAngle
(300A,0121)	CS	1	Beam Limiting Device Rotation Direction		BeamLimitingDeviceRotationDirection
(300A,0122)	DS	1	Patient Support Angle		PatientSupportAngle
(300A,0123)	CS	1	Patient Support Rotation Direction		PatientSupportRotationDirection
(300A,0124)	DS	1	Table Top Eccentric Axis Distance		TableTopEccentricAxisDistance
(300A,0125)	DS	1	Table Top Eccentric Angle		TableTopEccentricAngle
(300A,0126)	CS	1	Table Top Eccentric Rotation Direction		TableTopEccentricRotationDirection
(300A,0128)	DS	1	Table Top Vertical Position		TableTopVerticalPosition
(300A,0129)	DS	1	Table Top Longitudinal Position		TableTopLongitudinalPosition
(300A,012A)	DS	1	Table Top Lateral Position		TableTopLateralPosition
(300A,012C)	DS	3	Isocenter Position		IsocenterPosition
(300A,012E)	DS	3	Surface Entry Point		SurfaceEntryPoint
(300A,0130)	DS	1	Source to Surface Distance		SourceToSurfaceDistance
(300A,0131)	FL	1	Average Beam Dose Point Source to External Contour Distance		AverageBeamDosePointSourceToExternalContourDistance
(300A,0132)	FL	1	Source to External Contour Distance		SourceToExternalContourDistance
(300A,0133)	FL	3	External Contour Entry Point		ExternalContourEntryPoint
(300A,0134)	DS	1	Cumulative Meterset Weight		CumulativeMetersetWeight
(300A,0140)	FL	1	Table Top Pitch Angle		TableTopPitchAngle
(300A,0142)	CS	1	Table Top Pitch Rotation Direction		TableTopPitchRotationDirection
(300A,0144)	FL	1	Table Top Roll Angle		TableTopRollAngle
(300A,0146)	CS	1	Table Top Roll Rotation Direction		TableTopRollRotationDirection
(300A,0148)	FL	1	Head Fixation Angle		HeadFixationAngle
(300A,014A)	FL	1	Gantry Pitch Angle		GantryPitchAngle
(300A,014C)	CS	1	Gantry Pitch Rotation Direction		GantryPitchRotationDirection
(300A,014E)	FL	1	Gantry Pitch Angle Tolerance		GantryPitchAngleTolerance
(300A,0150)	CS	1	Fixation Eye		FixationEye
(300A,0151)	DS	1	Chair Head Frame Position		ChairHeadFramePosition
(300A,0152)	DS	1	Head Fixation Angle Tolerance		HeadFixationAngleTolerance
(300A,0153)	DS	1	Chair Head Frame Position Tolerance		ChairHeadFramePositionTolerance
(300A,0154)	DS	1	Fixation Light Azimuthal Angle Tolerance		FixationLightAzimuthalAngleTolerance
(300A,0155)	DS	1	Fixation Light Polar Angle Tolerance		FixationLightPolarAngleTolerance
(300A,0180)	SQ	1	Patient Setup Sequence		PatientSetupSequence
(300A,0182)	IS	1	Patient Setup Number		PatientSetupNumber
(300A,0183)	LO	1	Patient Setup Label		PatientSetupLabel
(300A,0184)	LO	1	Patient Additional Position		PatientAdditionalPosition
(300A,0190)	SQ	1	Fixation Device Sequence		FixationDeviceSequence
(300A,0192)	CS	1	Fixation Device Type		FixationDeviceType
(300A,0194)	SH	1	Fixation Device Label		FixationDeviceLabel
(300A,0196)	ST	1	Fixation Device Description		FixationDeviceDescription
(300A,0198)	SH	1	Fixation Device Position		FixationDevicePosition
(300A,0199)	FL	1	Fixation Device Pitch Angle		FixationDevicePitchAngle
(300A,019A)	FL	1	Fixation Device Roll Angle		FixationDeviceRollAngle
(300A,01A0)	SQ	1	Shielding Device Sequence		ShieldingDeviceSequence
(300A,01A2)	CS	1	Shielding Device Type		ShieldingDeviceType
(300A,01A4)	SH	1	Shielding Device Label		ShieldingDeviceLabel
(300A,01A6)	ST	1	Shielding Device Description		ShieldingDeviceDescription
(300A,01A8)	SH	1	Shielding Device Position		ShieldingDevicePosition
(300A,01B0)	CS	1	Setup Technique		SetupTechnique
(300A,01B2)	ST	1	Setup Technique Description		SetupTechniqueDescription
(300A,01B4)	SQ	1	Setup Device Sequence		SetupDeviceSequence
(300A,01B6)	CS	1	Setup Device Type		SetupDeviceType
(300A,01B8)	SH	1	Setup Device Label		SetupDeviceLabel
(300A,01BA)	ST	1	Setup Device Description		SetupDeviceDescription
(300A,01BC)	DS	1	Setup Device Parameter		SetupDeviceParameter
(300A,01D0)	ST	1	Setup Reference Description		SetupReferenceDescription
(300A,01D2)	DS	1	Table Top Vertical Setup Displacement		TableTopVerticalSetupDisplacement
(300A,01D4)	DS	1	Table Top Longitudinal Setup Displacement		TableTopLongitudinalSetupDisplacement
(300A,01D6)	DS	1	Table Top Lateral Setup Displacement		TableTopLateralSetupDisplacement
(300A,0200)	CS	1	Brachy Treatment Technique		BrachyTreatmentTechnique
(300A,0202)	CS	1	Brachy Treatment Type		BrachyTreatmentType
(300A,0206)	SQ	1	Treatment Machine Sequence		TreatmentMachineSequence
(300A,0210)	SQ	1	Source Sequence		SourceSequence
(300A,0212)	IS	1	Source Number		SourceNumber
(300A,0214)	CS	1	Source Type		SourceType
(300A,0216)	LO	1	Source Manufacturer		SourceManufacturer
(300A,0218)	DS	1	Active Source Diameter		ActiveSourceDiameter
(300A,021A)	DS	1	Active Source Length		ActiveSourceLength
(300A,021B)	SH	1	Source Model ID		SourceModelID
(300A,021C)	LO	1	Source Description		SourceDescription
(300A,0222)	DS	1	Source Encapsulation Nominal Thickness		SourceEncapsulationNominalThickness
(300A,0224)	DS	1	Source Encapsulation Nominal Transmission		SourceEncapsulationNominalTransmission
(300A,0226)	LO	1	Source Isotope Name		SourceIsotopeName
(300A,0228)	DS	1	Source Isotope Half Life		SourceIsotopeHalfLife
(300A,0229)	CS	1	Source Strength Units		SourceStrengthUnits
(300A,022A)	DS	1	Reference Air Kerma Rate		ReferenceAirKermaRate
(300A,022B)	DS	1	Source Strength		SourceStrength
(300A,022C)	DA	1	Source Strength Reference Date		SourceStrengthReferenceDate
(300A,022E)	TM	1	Source Strength Reference Time		SourceStrengthReferenceTime
(300A,0230)	SQ	1	Application Setup Sequence		ApplicationSetupSequence
(300A,0232)	CS	1	Application Setup Type		ApplicationSetupType
(300A,0234)	IS	1	Application Setup Number		ApplicationSetupNumber
(300A,0236)	LO	1	Application Setup Name		ApplicationSetupName
(300A,0238)	LO	1	Application Setup Manufacturer		ApplicationSetupManufacturer
(300A,0240)	IS	1	Template Number		TemplateNumber
(300A,0242)	SH	1	Template Type		TemplateType
(300A,0244)	LO	1	Template Name		TemplateName
(300A,0250)	DS	1	Total Reference Air Kerma		TotalReferenceAirKerma
(300A,0260)	SQ	1	Brachy Accessory Device Sequence		BrachyAccessoryDeviceSequence
(300A,0262)	IS	1	Brachy Accessory Device Number		BrachyAccessoryDeviceNumber
(300A,0263)	SH	1	Brachy Accessory Device ID		BrachyAccessoryDeviceID
(300A,0264)	CS	1	Brachy Accessory Device Type		BrachyAccessoryDeviceType
(300A,0266)	LO	1	Brachy Accessory Device Name		BrachyAccessoryDeviceName
(300A,026A)	DS	1	Brachy Accessory Device Nominal Thickness		BrachyAccessoryDeviceNominalThickness
(300A,026C)	DS	1	Brachy Accessory Device Nominal Transmission		BrachyAccessoryDeviceNominalTransmission
(300A,0271)	DS	1	Channel Effective Length		ChannelEffectiveLength
(300A,0272)	DS	1	Channel Inner Length		ChannelInnerLength
(300A,0273)	SH	1	Afterloader Channel ID		AfterloaderChannelID
(300A,0274)	DS	1	Source Applicator Tip Length		SourceApplicatorTipLength
(300A,0280)	SQ	1	Channel Sequence		ChannelSequence
(300A,0282)	IS	1	Channel Number		ChannelNumber
(300A,0284)	DS	1	Channel Length		ChannelLength
(300A,0286)	DS	1	Channel Total Time		ChannelTotalTime
(300A,0288)	CS	1	Source Movement Type		SourceMovementType
(300A,028A)	IS	1	Number of Pulses		NumberOfPulses
(300A,028C)	DS	1	Pulse Repetition Interval		PulseRepetitionInterval
(300A,0290)	IS	1	Source Applicator Number		SourceApplicatorNumber
(300A,0291)	SH	1	Source Applicator ID		SourceApplicatorID
(300A,0292)	CS	1	Source Applicator Type		SourceApplicatorType
(300A,0294)	LO	1	Source Applicator Name		SourceApplicatorName
(300A,0296)	DS	1	Source Applicator Length		SourceApplicatorLength
(300A,0298)	LO	1	Source Applicator Manufacturer		SourceApplicatorManufacturer
(300A,029C)	DS	1	Source Applicator Wall Nominal Thickness		SourceApplicatorWallNominalThickness
(300A,029E)	DS	1	Source Applicator Wall Nominal Transmission		SourceApplicatorWallNominalTransmission
(300A,02A0)	DS	1	Source Applicator Step Size		SourceApplicatorStepSize
(300A,02A1)	IS	1	Applicator Shape Referenced ROI Number		ApplicatorShapeReferencedROINumber
(300A,02A2)	IS	1	Transfer Tube Number		TransferTubeNumber
(300A,02A4)	DS	1	Transfer Tube Length		TransferTubeLength
(300A,02B0)	SQ	1	Channel Shield Sequence		ChannelShieldSequence
(300A,02B2)	IS	1	Channel Shield Number		ChannelShieldNumber
(300A,02B3)	SH	1	Channel Shield ID		ChannelShieldID
(300A,02B4)	LO	1	Channel Shield Name		ChannelShieldName
(300A,02B8)	DS	1	Channel Shield Nominal Thickness		ChannelShieldNominalThickness
(300A,02BA)	DS	1	Channel Shield Nominal Transmission		ChannelShieldNominalTransmission
(300A,02C8)	DS	1	Final Cumulative Time Weight		FinalCumulativeTimeWeight
(300A,02D0)	SQ	1	Brachy Control Point Sequence		BrachyControlPointSequence
(300A,02D2)	DS	1	Control Point Relative Position		ControlPointRelativePosition
(300A,02D4)	DS	3	Control Point 3D Position		ControlPoint3DPosition
(300A,02D6)	DS	1	Cumulative Time Weight		CumulativeTimeWeight
(300A,02E0)	CS	1	Compensator Divergence		CompensatorDivergence
(300A,02E1)	CS	1	Compensator Mounting Position		CompensatorMountingPosition
(300A,02E2)	DS	1-n	Source to Compensator Distance		SourceToCompensatorDistance
(300A,02E3)	FL	1	Total Compensator Tray Water-Equivalent Thickness		TotalCompensatorTrayWaterEquivalentThickness
(300A,02E4)	FL	1	Isocenter to Compensator Tray Distance		IsocenterToCompensatorTrayDistance
(300A,02E5)	FL	1	Compensator Column Offset		CompensatorColumnOffset
(300A,02E6)	FL	1-n	Isocenter to Compensator Distances		IsocenterToCompensatorDistances
(300A,02E7)	FL	1	Compensator Relative Stopping Power Ratio		CompensatorRelativeStoppingPowerRatio
(300A,02E8)	FL	1	Compensator Milling Tool Diameter		CompensatorMillingToolDiameter
(300A,02EA)	SQ	1	Ion Range Compensator Sequence		IonRangeCompensatorSequence
(300A,02EB)	LT	1	Compensator Description		CompensatorDescription
(300A,0302)	IS	1	Radiation Mass Number		RadiationMassNumber
(300A,0304)	IS	1	Radiation Atomic Number		RadiationAtomicNumber
(300A,0306)	SS	1	Radiation Charge State		RadiationChargeState
(300A,0308)	CS	1	Scan Mode		ScanMode
(300A,0309)	CS	1	Modulated Scan Mode Type		ModulatedScanModeType
(300A,030A)	FL	2	Virtual Source-Axis Distances		VirtualSourceAxisDistances
(300A,030C)	SQ	1	Snout Sequence		SnoutSequence
(300A,030D)	FL	1	Snout Position		SnoutPosition
(300A,030F)	SH	1	Snout ID		SnoutID
(300A,0312)	IS	1	Number of Range Shifters		NumberOfRangeShifters
(300A,0314)	SQ	1	Range Shifter Sequence		RangeShifterSequence
(300A,0316)	IS	1	Range Shifter Number		RangeShifterNumber
(300A,0318)	SH	1	Range Shifter ID		RangeShifterID
(300A,0320)	CS	1	Range Shifter Type		RangeShifterType
(300A,0322)	LO	1	Range Shifter Description		RangeShifterDescription
(300A,0330)	IS	1	Number of Lateral Spreading Devices		NumberOfLateralSpreadingDevices
(300A,0332)	SQ	1	Lateral Spreading Device Sequence		LateralSpreadingDeviceSequence
(300A,0334)	IS	1	Lateral Spreading Device Number		LateralSpreadingDeviceNumber
(300A,0336)	SH	1	Lateral Spreading Device ID		LateralSpreadingDeviceID
(300A,0338)	CS	1	Lateral Spreading Device Type		LateralSpreadingDeviceType
(300A,033A)	LO	1	Lateral Spreading Device Description		LateralSpreadingDeviceDescription
(300A,033C)	FL	1	Lateral Spreading Device Water Equivalent Thickness		LateralSpreadingDeviceWaterEquivalentThickness
(300A,0340)	IS	1	Number of Range Modulators		NumberOfRangeModulators
(300A,0342)	SQ	1	Range Modulator Sequence		RangeModulatorSequence
(300A,0344)	IS	1	Range Modulator Number		RangeModulatorNumber
(300A,0346)	SH	1	Range Modulator ID		RangeModulatorID
(300A,0348)	CS	1	Range Modulator Type		RangeModulatorType
(300A,034A)	LO	1	Range Modulator Description		RangeModulatorDescription
(300A,034C)	SH	1	Beam Current Modulation ID		BeamCurrentModulationID
(300A,0350)	CS	1	Patient Support Type		PatientSupportType
(300A,0352)	SH	1	Patient Support ID		PatientSupportID
(300A,0354)	LO	1	Patient Support Accessory Code		PatientSupportAccessoryCode
(300A,0355)	LO	1	Tray Accessory Code		TrayAccessoryCode
(300A,0356)	FL	1	Fixation Light Azimuthal Angle		FixationLightAzimuthalAngle
(300A,0358)	FL	1	Fixation Light Polar Angle		FixationLightPolarAngle
(300A,035A)	FL	1	Meterset Rate		MetersetRate
(300A,0360)	SQ	1	Range Shifter Settings Sequence		RangeShifterSettingsSequence
(300A,0362)	LO	1	Range Shifter Setting		RangeShifterSetting
(300A,0364)	FL	1	Isocenter to Range Shifter Distance		IsocenterToRangeShifterDistance
(300A,0366)	FL	1	Range Shifter Water Equivalent Thickness		RangeShifterWaterEquivalentThickness
(300A,0370)	SQ	1	Lateral Spreading Device Settings Sequence		LateralSpreadingDeviceSettingsSequence
(300A,0372)	LO	1	Lateral Spreading Device Setting		LateralSpreadingDeviceSetting
(300A,0374)	FL	1	Isocenter to Lateral Spreading Device Distance		IsocenterToLateralSpreadingDeviceDistance
(300A,0380)	SQ	1	Range Modulator Settings Sequence		RangeModulatorSettingsSequence
(300A,0382)	FL	1	Range Modulator Gating Start Value		RangeModulatorGatingStartValue
(300A,0384)	FL	1	Range Modulator Gating Stop Value		RangeModulatorGatingStopValue
(300A,0386)	FL	1	Range Modulator Gating Start Water Equivalent Thickness		RangeModulatorGatingStartWaterEquivalentThickness
(300A,0388)	FL	1	Range Modulator Gating Stop Water Equivalent Thickness		RangeModulatorGatingStopWaterEquivalentThickness
(300A,038A)	FL	1	Isocenter to Range Modulator Distance		IsocenterToRangeModulatorDistance
(300A,038F)	FL	1-n	Scan Spot Time Offset		ScanSpotTimeOffset
(300A,0390)	SH	1	Scan Spot Tune ID		ScanSpotTuneID
(300A,0391)	IS	1-n	Scan Spot Prescribed Indices		ScanSpotPrescribedIndices
(300A,0392)	IS	1	Number of Scan Spot Positions		NumberOfScanSpotPositions
(300A,0393)	CS	1	Scan Spot Reordered		ScanSpotReordered
(300A,0394)	FL	1-n	Scan Spot Position Map		ScanSpotPositionMap
(300A,0395)	CS	1	Scan Spot Reordering Allowed		ScanSpotReorderingAllowed
(300A,0396)	FL	1-n	Scan Spot Meterset Weights		ScanSpotMetersetWeights
(300A,0398)	FL	2	Scanning Spot Size		ScanningSpotSize
(300A,0399)	FL	2-2n	Scan Spot Sizes Delivered		ScanSpotSizesDelivered
(300A,039A)	IS	1	Number of Paintings		NumberOfPaintings
(300A,03A0)	SQ	1	Ion Tolerance Table Sequence		IonToleranceTableSequence
(300A,03A2)	SQ	1	Ion Beam Sequence		IonBeamSequence
(300A,03A4)	SQ	1	Ion Beam Limiting Device Sequence		IonBeamLimitingDeviceSequence
(300A,03A6)	SQ	1	Ion Block Sequence		IonBlockSequence
(300A,03A8)	SQ	1	Ion Control Point Sequence		IonControlPointSequence
(300A,03AA)	SQ	1	Ion Wedge Sequence		IonWedgeSequence
(300A,03AC)	SQ	1	Ion Wedge Position Sequence		IonWedgePositionSequence
(300A,0401)	SQ	1	Referenced Setup Image Sequence		ReferencedSetupImageSequence
(300A,0402)	ST	1	Setup Image Comment		SetupImageComment
(300A,0410)	SQ	1	Motion Synchronization Sequence		MotionSynchronizationSequence
(300A,0412)	FL	3	Control Point Orientation		ControlPointOrientation
(300A,0420)	SQ	1	General Accessory Sequence		GeneralAccessorySequence
(300A,0421)	SH	1	General Accessory ID		GeneralAccessoryID
(300A,0422)	ST	1	General Accessory Description		GeneralAccessoryDescription
(300A,0423)	CS	1	General Accessory Type		GeneralAccessoryType
(300A,0424)	IS	1	General Accessory Number		GeneralAccessoryNumber
(300A,0425)	FL	1	Source to General Accessory Distance		SourceToGeneralAccessoryDistance
(300A,0426)	DS	1	Isocenter to General Accessory Distance		IsocenterToGeneralAccessoryDistance
(300A,0431)	SQ	1	Applicator Geometry Sequence		ApplicatorGeometrySequence
(300A,0432)	CS	1	Applicator Aperture Shape		ApplicatorApertureShape
(300A,0433)	FL	1	Applicator Opening		ApplicatorOpening
(300A,0434)	FL	1	Applicator Opening X		ApplicatorOpeningX
(300A,0435)	FL	1	Applicator Opening Y		ApplicatorOpeningY
(300A,0436)	FL	1	Source to Applicator Mounting Position Distance		SourceToApplicatorMountingPositionDistance
(300A,0440)	IS	1	Number of Block Slab Items		NumberOfBlockSlabItems
(300A,0441)	SQ	1	Block Slab Sequence		BlockSlabSequence
(300A,0442)	DS	1	Block Slab Thickness		BlockSlabThickness
(300A,0443)	US	1	Block Slab Number		BlockSlabNumber
(300A,0450)	SQ	1	Device Motion Control Sequence		DeviceMotionControlSequence
(300A,0451)	CS	1	Device Motion Execution Mode		DeviceMotionExecutionMode
(300A,0452)	CS	1	Device Motion Observation Mode		DeviceMotionObservationMode
(300A,0453)	SQ	1	Device Motion Parameter Code Sequence		DeviceMotionParameterCodeSequence
(300A,0501)	FL	1	Distal Depth Fraction		DistalDepthFraction
(300A,0502)	FL	1	Distal Depth		DistalDepth
(300A,0503)	FL	2	Nominal Range Modulation Fractions		NominalRangeModulationFractions
(300A,0504)	FL	2	Nominal Range Modulated Region Depths		NominalRangeModulatedRegionDepths
(300A,0505)	SQ	1	Depth Dose Parameters Sequence		DepthDoseParametersSequence
(300A,0506)	SQ	1	Delivered Depth Dose Parameters Sequence		DeliveredDepthDoseParametersSequence
(300A,0507)	FL	1	Delivered Distal Depth Fraction		DeliveredDistalDepthFraction
(300A,0508)	FL	1	Delivered Distal Depth		DeliveredDistalDepth
(300A,0509)	FL	2	Delivered Nominal Range Modulation Fractions		DeliveredNominalRangeModulationFractions
(300A,0510)	FL	2	Delivered Nominal Range Modulated Region Depths		DeliveredNominalRangeModulatedRegionDepths
(300A,0511)	CS	1	Delivered Reference Dose Definition		DeliveredReferenceDoseDefinition
(300A,0512)	CS	1	Reference Dose Definition		ReferenceDoseDefinition
(300A,0600)	US	1	RT Control Point Index		RTControlPointIndex
(300A,0601)	US	1	Radiation Generation Mode Index		RadiationGenerationModeIndex
(300A,0602)	US	1	Referenced Defined Device Index		ReferencedDefinedDeviceIndex
(300A,0603)	US	1	Radiation Dose Identification Index		RadiationDoseIdentificationIndex
(300A,0604)	US	1	Number of RT Control Points		NumberOfRTControlPoints
(300A,0605)	US	1	Referenced Radiation Generation Mode Index		ReferencedRadiationGenerationModeIndex
(300A,0606)	US	1	Treatment Position Index		TreatmentPositionIndex
(300A,0607)	US	1	Referenced Device Index		ReferencedDeviceIndex
(300A,0608)	LO	1	Treatment Position Group Label		TreatmentPositionGroupLabel
(300A,0609)	UI	1	Treatment Position Group UID		TreatmentPositionGroupUID
(300A,060A)	SQ	1	Treatment Position Group Sequence		TreatmentPositionGroupSequence
(300A,060B)	US	1	Referenced Treatment Position Index		ReferencedTreatmentPositionIndex
(300A,060C)	US	1	Referenced Radiation Dose Identification Index		ReferencedRadiationDoseIdentificationIndex
(300A,060D)	FD	1	RT Accessory Holder Water-Equivalent Thickness		RTAccessoryHolderWaterEquivalentThickness
(300A,060E)	US	1	Referenced RT Accessory Holder Device Index		ReferencedRTAccessoryHolderDeviceIndex
(300A,060F)	CS	1	RT Accessory Holder Slot Existence Flag		RTAccessoryHolderSlotExistenceFlag
(300A,0610)	SQ	1	RT Accessory Holder Slot Sequence		RTAccessoryHolderSlotSequence
(300A,0611)	LO	1	RT Accessory Holder Slot ID		RTAccessoryHolderSlotID
(300A,0612)	FD	1	RT Accessory Holder Slot Distance		RTAccessoryHolderSlotDistance
(300A,0613)	FD	1	RT Accessory Slot Distance		RTAccessorySlotDistance
(300A,0614)	SQ	1	RT Accessory Holder Definition Sequence		RTAccessoryHolderDefinitionSequence
(300A,0615)	LO	1	RT Accessory Device Slot ID		RTAccessoryDeviceSlotID
(300A,0616)	SQ	1	RT Radiation Sequence		RTRadiationSequence
(300A,0617)	SQ	1	Radiation Dose Sequence		RadiationDoseSequence
(300A,0618)	SQ	1	Radiation Dose Identification Sequence		RadiationDoseIdentificationSequence
(300A,0619)	LO	1	Radiation Dose Identification Label		RadiationDoseIdentificationLabel
(300A,061A)	CS	1	Reference Dose Type		ReferenceDoseType
(300A,061B)	CS	1	Primary Dose Value Indicator		PrimaryDoseValueIndicator
(300A,061C)	SQ	1	Dose Values Sequence		DoseValuesSequence
(300A,061D)	CS	1-n	Dose Value Purpose		DoseValuePurpose
(300A,061E)	FD	3	Reference Dose Point Coordinates		ReferenceDosePointCoordinates
(300A,061F)	SQ	1	Radiation Dose Values Parameters Sequence		RadiationDoseValuesParametersSequence
(300A,0620)	SQ	1	Meterset to Dose Mapping Sequence		MetersetToDoseMappingSequence
(300A,0621)	SQ	1	Expected In-Vivo Measurement Values Sequence		ExpectedInVivoMeasurementValuesSequence
(300A,0622)	US	1	Expected In-Vivo Measurement Value Index		ExpectedInVivoMeasurementValueIndex
(300A,0623)	LO	1	Radiation Dose In-Vivo Measurement Label		RadiationDoseInVivoMeasurementLabel
(300A,0624)	FD	2	Radiation Dose Central Axis Displacement		RadiationDoseCentralAxisDisplacement
(300A,0625)	FD	1	Radiation Dose Value		RadiationDoseValue
(300A,0626)	FD	1	Radiation Dose Source to Skin Distance		RadiationDoseSourceToSkinDistance
(300A,0627)	FD	3	Radiation Dose Measurement Point Coordinates		RadiationDoseMeasurementPointCoordinates
(300A,0628)	FD	1	Radiation Dose Source to External Contour Distance		RadiationDoseSourceToExternalContourDistance
(300A,0629)	SQ	1	RT Tolerance Set Sequence		RTToleranceSetSequence
(300A,062A)	LO	1	RT Tolerance Set Label		RTToleranceSetLabel
(300A,062B)	SQ	1	Attribute Tolerance Values Sequence		AttributeToleranceValuesSequence
(300A,062C)	FD	1	Tolerance Value		ToleranceValue
(300A,062D)	SQ	1	Patient Support Position Tolerance Sequence		PatientSupportPositionToleranceSequence
(300A,062E)	FD	1	Treatment Time Limit		TreatmentTimeLimit
(300A,062F)	SQ	1	C-Arm Photon-Electron Control Point Sequence		CArmPhotonElectronControlPointSequence
(300A,0630)	SQ	1	Referenced RT Radiation Sequence		ReferencedRTRadiationSequence
(300A,0631)	SQ	1	Referenced RT Instance Sequence		ReferencedRTInstanceSequence
(300A,0632)	SQ	1	Referenced RT Patient Setup Sequence	RET	ReferencedRTPatientSetupSequence
(300A,0634)	FD	1	Source to Patient Surface Distance		SourceToPatientSurfaceDistance
(300A,0635)	SQ	1	Treatment Machine Special Mode Code Sequence		TreatmentMachineSpecialModeCodeSequence
(300A,0636)	US	1	Intended Number of Fractions		IntendedNumberOfFractions
(300A,0637)	CS	1	RT Radiation Set Intent		RTRadiationSetIntent
(300A,0638)	CS	1	RT Radiation Physical and Geometric Content Detail Flag		RTRadiationPhysicalAndGeometricContentDetailFlag
(300A,0639)	CS	1	RT Record Flag		RTRecordFlag
(300A,063A)	SQ	1	Treatment Device Identification Sequence		TreatmentDeviceIdentificationSequence
(300A,063B)	SQ	1	Referenced RT Physician Intent Sequence		ReferencedRTPhysicianIntentSequence
(300A,063C)	FD	1	Cumulative Meterset		CumulativeMeterset
(300A,063D)	FD	1	Delivery Rate		DeliveryRate
(300A,063E)	SQ	1	Delivery Rate Unit Sequence		DeliveryRateUnitSequence
(300A,063F)	SQ	1	Treatment Position Sequence		TreatmentPositionSequence
(300A,0640)	FD	1	Radiation Source-Axis Distance		RadiationSourceAxisDistance
(300A,0641)	US	1	Number of RT Beam Limiting Devices		NumberOfRTBeamLimitingDevices
(300A,0642)	FD	1	RT Beam Limiting Device Proximal Distance		RTBeamLimitingDeviceProximalDistance
(300A,0643)	FD	1	RT Beam Limiting Device Distal Distance		RTBeamLimitingDeviceDistalDistance
(300A,0644)	SQ	1	Parallel RT Beam Delimiter Device Orientation Label Code Sequence		ParallelRTBeamDelimiterDeviceOrientationLabelCodeSequence
(300A,0645)	FD	1	Beam Modifier Orientation Angle		BeamModifierOrientationAngle
(300A,0646)	SQ	1	Fixed RT Beam Delimiter Device Sequence		FixedRTBeamDelimiterDeviceSequence
(300A,0647)	SQ	1	Parallel RT Beam Delimiter Device Sequence		ParallelRTBeamDelimiterDeviceSequence
(300A,0648)	US	1	Number of Parallel RT Beam Delimiters		NumberOfParallelRTBeamDelimiters
(300A,0649)	FD	2-n	Parallel RT Beam Delimiter Boundaries		ParallelRTBeamDelimiterBoundaries
(300A,064A)	FD	2-n	Parallel RT Beam Delimiter Positions		ParallelRTBeamDelimiterPositions
(300A,064B)	FD	2	RT Beam Limiting Device Offset		RTBeamLimitingDeviceOffset
(300A,064C)	SQ	1	RT Beam Delimiter Geometry Sequence		RTBeamDelimiterGeometrySequence
(300A,064D)	SQ	1	RT Beam Limiting Device Definition Sequence		RTBeamLimitingDeviceDefinitionSequence
(300A,064E)	CS	1	Parallel RT Beam Delimiter Opening Mode		ParallelRTBeamDelimiterOpeningMode
(300A,064F)	CS	1-n	Parallel RT Beam Delimiter Leaf Mounting Side		ParallelRTBeamDelimiterLeafMountingSide
(300A,0650)	UI	1	Patient Setup UID	RET	PatientSetupUID
(300A,0651)	SQ	1	Wedge Definition Sequence		WedgeDefinitionSequence
(300A,0652)	FD	1	Radiation Beam Wedge Angle		RadiationBeamWedgeAngle
(300A,0653)	FD	1	Radiation Beam Wedge Thin Edge Distance		RadiationBeamWedgeThinEdgeDistance
(300A,0654)	FD	1	Radiation Beam Effective Wedge Angle		RadiationBeamEffectiveWedgeAngle
(300A,0655)	US	1	Number of Wedge Positions		NumberOfWedgePositions
(300A,0656)	SQ	1	RT Beam Limiting Device Opening Sequence		RTBeamLimitingDeviceOpeningSequence
(300A,0657)	US	1	Number of RT Beam Limiting Device Openings		NumberOfRTBeamLimitingDeviceOpenings
(300A,0658)	SQ	1	Radiation Dosimeter Unit Sequence		RadiationDosimeterUnitSequence
(300A,0659)	SQ	1	RT Device Distance Reference Location Code Sequence		RTDeviceDistanceReferenceLocationCodeSequence
(300A,065A)	SQ	1	Radiation Device Configuration and Commissioning Key Sequence		RadiationDeviceConfigurationAndCommissioningKeySequence
(300A,065B)	SQ	1	Patient Support Position Parameter Sequence		PatientSupportPositionParameterSequence
(300A,065C)	CS	1	Patient Support Position Specification Method		PatientSupportPositionSpecificationMethod
(300A,065D)	SQ	1	Patient Support Position Device Parameter Sequence		PatientSupportPositionDeviceParameterSequence
(300A,065E)	US	1	Device Order Index		DeviceOrderIndex
(300A,065F)	US	1	Patient Support Position Parameter Order Index		PatientSupportPositionParameterOrderIndex
(300A,0660)	SQ	1	Patient Support Position Device Tolerance Sequence		PatientSupportPositionDeviceToleranceSequence
(300A,0661)	US	1	Patient Support Position Tolerance Order Index		PatientSupportPositionToleranceOrderIndex
(300A,0662)	SQ	1	Compensator Definition Sequence		CompensatorDefinitionSequence
(300A,0663)	CS	1	Compensator Map Orientation		CompensatorMapOrientation
(300A,0664)	OF	1	Compensator Proximal Thickness Map		CompensatorProximalThicknessMap
(300A,0665)	OF	1	Compensator Distal Thickness Map		CompensatorDistalThicknessMap
(300A,0666)	FD	1	Compensator Base Plane Offset		CompensatorBasePlaneOffset
(300A,0667)	SQ	1	Compensator Shape Fabrication Code Sequence		CompensatorShapeFabricationCodeSequence
(300A,0668)	SQ	1	Compensator Shape Sequence		CompensatorShapeSequence
(300A,0669)	FD	1	Radiation Beam Compensator Milling Tool Diameter		RadiationBeamCompensatorMillingToolDiameter
(300A,066A)	SQ	1	Block Definition Sequence		BlockDefinitionSequence
(300A,066B)	OF	1	Block Edge Data		BlockEdgeData
(300A,066C)	CS	1	Block Orientation		BlockOrientation
(300A,066D)	FD	1	Radiation Beam Block Thickness		RadiationBeamBlockThickness
(300A,066E)	FD	1	Radiation Beam Block Slab Thickness		RadiationBeamBlockSlabThickness
(300A,066F)	SQ	1	Block Edge Data Sequence		BlockEdgeDataSequence
(300A,0670)	US	1	Number of RT Accessory Holders		NumberOfRTAccessoryHolders
(300A,0671)	SQ	1	General Accessory Definition Sequence		GeneralAccessoryDefinitionSequence
(300A,0672)	US	1	Number of General Accessories		NumberOfGeneralAccessories
(300A,0673)	SQ	1	Bolus Definition Sequence		BolusDefinitionSequence
(300A,0674)	US	1	Number of Boluses		NumberOfBoluses
(300A,0675)	UI	1	Equipment Frame of Reference UID		EquipmentFrameOfReferenceUID
(300A,0676)	ST	1	Equipment Frame of Reference Description		EquipmentFrameOfReferenceDescription
(300A,0677)	SQ	1	Equipment Reference Point Coordinates Sequence		EquipmentReferencePointCoordinatesSequence
(300A,0678)	SQ	1	Equipment Reference Point Code Sequence		EquipmentReferencePointCodeSequence
(300A,0679)	FD	1	RT Beam Limiting Device Angle		RTBeamLimitingDeviceAngle
(300A,067A)	FD	1	Source Roll Angle		SourceRollAngle
(300A,067B)	SQ	1	Radiation GenerationMode Sequence		RadiationGenerationModeSequence
(300A,067C)	SH	1	Radiation GenerationMode Label		RadiationGenerationModeLabel
(300A,067D)	ST	1	Radiation GenerationMode Description		RadiationGenerationModeDescription
(300A,067E)	SQ	1	Radiation GenerationMode Machine Code Sequence		RadiationGenerationModeMachineCodeSequence
(300A,067F)	SQ	1	Radiation Type Code Sequence		RadiationTypeCodeSequence
(300A,0680)	DS	1	Nominal Energy		NominalEnergy
(300A,0681)	DS	1	Minimum Nominal Energy		MinimumNominalEnergy
(300A,0682)	DS	1	Maximum Nominal Energy		MaximumNominalEnergy
(300A,0683)	SQ	1	Radiation Fluence Modifier Code Sequence		RadiationFluenceModifierCodeSequence
(300A,0684)	SQ	1	Energy Unit Code Sequence		EnergyUnitCodeSequence
(300A,0685)	US	1	Number of Radiation GenerationModes		NumberOfRadiationGenerationModes
(300A,0686)	SQ	1	Patient Support Devices Sequence		PatientSupportDevicesSequence
(300A,0687)	US	1	Number of Patient Support Devices		NumberOfPatientSupportDevices
(300A,0688)	FD	1	RT Beam Modifier Definition Distance		RTBeamModifierDefinitionDistance
(300A,0689)	SQ	1	Beam Area Limit Sequence		BeamAreaLimitSequence
(300A,068A)	SQ	1	Referenced RT Prescription Sequence		ReferencedRTPrescriptionSequence
(300A,068B)	CS	1	Dose Value Interpretation		DoseValueInterpretation
(300A,0700)	UI	1	Treatment Session UID		TreatmentSessionUID
(300A,0701)	CS	1	RT Radiation Usage		RTRadiationUsage
(300A,0702)	SQ	1	Referenced RT Radiation Set Sequence		ReferencedRTRadiationSetSequence
(300A,0703)	SQ	1	Referenced RT Radiation Record Sequence		ReferencedRTRadiationRecordSequence
(300A,0704)	US	1	RT Radiation Set Delivery Number		RTRadiationSetDeliveryNumber
(300A,0705)	US	1	Clinical Fraction Number		ClinicalFractionNumber
(300A,0706)	CS	1	RT Treatment Fraction Completion Status		RTTreatmentFractionCompletionStatus
(300A,0707)	CS	1	RT Radiation Set Usage		RTRadiationSetUsage
(300A,0708)	CS	1	Treatment Delivery Continuation Flag		TreatmentDeliveryContinuationFlag
(300A,0709)	CS	1	Treatment Record Content Origin		TreatmentRecordContentOrigin
(300A,0714)	CS	1	RT Treatment Termination Status		RTTreatmentTerminationStatus
(300A,0715)	SQ	1	RT Treatment Termination Reason Code Sequence		RTTreatmentTerminationReasonCodeSequence
(300A,0716)	SQ	1	Machine-Specific Treatment Termination Code Sequence		MachineSpecificTreatmentTerminationCodeSequence
(300A,0722)	SQ	1	RT Radiation Salvage Record Control Point Sequence		RTRadiationSalvageRecordControlPointSequence
(300A,0723)	CS	1	Starting Meterset Value Known Flag		StartingMetersetValueKnownFlag
(300A,0730)	ST	1	Treatment Termination Description		TreatmentTerminationDescription
(300A,0731)	SQ	1	Treatment Tolerance Violation Sequence		TreatmentToleranceViolationSequence
(300A,0732)	CS	1	Treatment Tolerance Violation Category		TreatmentToleranceViolationCategory
(300A,0733)	SQ	1	Treatment Tolerance Violation Attribute Sequence		TreatmentToleranceViolationAttributeSequence
(300A,0734)	ST	1	Treatment Tolerance Violation Description		TreatmentToleranceViolationDescription
(300A,0735)	ST	1	Treatment Tolerance Violation Identification		TreatmentToleranceViolationIdentification
(300A,0736)	DT	1	Treatment Tolerance Violation DateTime		TreatmentToleranceViolationDateTime
(300A,073A)	DT	1	Recorded RT Control Point DateTime		RecordedRTControlPointDateTime
(300A,073B)	US	1	Referenced Radiation RT Control Point Index		ReferencedRadiationRTControlPointIndex
(300A,073E)	SQ	1	Alternate Value Sequence		AlternateValueSequence
(300A,073F)	SQ	1	Confirmation Sequence		ConfirmationSequence
(300A,0740)	SQ	1	Interlock Sequence		InterlockSequence
(300A,0741)	DT	1	Interlock DateTime		InterlockDateTime
(300A,0742)	ST	1	Interlock Description		InterlockDescription
(300A,0743)	SQ	1	Interlock Originating Device Sequence		InterlockOriginatingDeviceSequence
(300A,0744)	SQ	1	Interlock Code Sequence		InterlockCodeSequence
(300A,0745)	SQ	1	Interlock Resolution Code Sequence		InterlockResolutionCodeSequence
(300A,0746)	SQ	1	Interlock Resolution User Sequence		InterlockResolutionUserSequence
(300A,0760)	DT	1	Override DateTime		OverrideDateTime
(300A,0761)	SQ	1	Treatment Tolerance Violation Type Code Sequence		TreatmentToleranceViolationTypeCodeSequence
(300A,0762)	SQ	1	Treatment Tolerance Violation Cause Code Sequence		TreatmentToleranceViolationCauseCodeSequence
(300A,0772)	SQ	1	Measured Meterset to Dose Mapping Sequence		MeasuredMetersetToDoseMappingSequence
(300A,0773)	US	1	Referenced Expected In-Vivo Measurement Value Index		ReferencedExpectedInVivoMeasurementValueIndex
(300A,0774)	SQ	1	Dose Measurement Device Code Sequence		DoseMeasurementDeviceCodeSequence
(300A,0780)	SQ	1	Additional Parameter Recording Instance Sequence		AdditionalParameterRecordingInstanceSequence
(300A,0783)	ST	1	Interlock Origin Description		InterlockOriginDescription
(300A,0784)	SQ	1	RT Patient Position Scope Sequence		RTPatientPositionScopeSequence
(300A,0785)	UI	1	Referenced Treatment Position Group UID		ReferencedTreatmentPositionGroupUID
(300A,0786)	US	1	Radiation Order Index		RadiationOrderIndex
(300A,0787)	SQ	1	Omitted Radiation Sequence		OmittedRadiationSequence
(300A,0788)	SQ	1	Reason for Omission Code Sequence		ReasonForOmissionCodeSequence
(300A,0789)	SQ	1	RT Delivery Start Patient Position Sequence		RTDeliveryStartPatientPositionSequence
(300A,078A)	SQ	1	RT Treatment Preparation Patient Position Sequence		RTTreatmentPreparationPatientPositionSequence
(300A,078B)	SQ	1	Referenced RT Treatment Preparation Sequence		ReferencedRTTreatmentPreparationSequence
(300A,078C)	SQ	1	Referenced Patient Setup Photo Sequence		ReferencedPatientSetupPhotoSequence
(300A,078D)	SQ	1	Patient Treatment Preparation Method Code Sequence		PatientTreatmentPreparationMethodCodeSequence
(300A,078E)	LT	1	Patient Treatment Preparation Procedure Parameter Description		PatientTreatmentPreparationProcedureParameterDescription
(300A,078F)	SQ	1	Patient Treatment Preparation Device Sequence		PatientTreatmentPreparationDeviceSequence
(300A,0790)	SQ	1	Patient Treatment Preparation Procedure Sequence		PatientTreatmentPreparationProcedureSequence
(300A,0791)	SQ	1	Patient Treatment Preparation Procedure Code Sequence		PatientTreatmentPreparationProcedureCodeSequence
(300A,0792)	LT	1	Patient Treatment Preparation Method Description		PatientTreatmentPreparationMethodDescription
(300A,0793)	SQ	1	Patient Treatment Preparation Procedure Parameter Sequence		PatientTreatmentPreparationProcedureParameterSequence
(300A,0794)	LT	1	Patient Setup Photo Description		PatientSetupPhotoDescription
(300A,0795)	US	1	Patient Treatment Preparation Procedure Index		PatientTreatmentPreparationProcedureIndex
(300A,0796)	US	1	Referenced Patient Setup Procedure Index		ReferencedPatientSetupProcedureIndex
(300A,0797)	SQ	1	RT Radiation Task Sequence		RTRadiationTaskSequence
(300A,0798)	SQ	1	RT Patient Position Displacement Sequence		RTPatientPositionDisplacementSequence
(300A,0799)	SQ	1	RT Patient Position Sequence		RTPatientPositionSequence
(300A,079A)	LO	1	Displacement Reference Label		DisplacementReferenceLabel
(300A,079B)	FD	16	Displacement Matrix		DisplacementMatrix
(300A,079C)	SQ	1	Patient Support Displacement Sequence		PatientSupportDisplacementSequence
(300A,079D)	SQ	1	Displacement Reference Location Code Sequence		DisplacementReferenceLocationCodeSequence
(300A,079E)	CS	1	RT Radiation Set Delivery Usage		RTRadiationSetDeliveryUsage
(300C,0002)	SQ	1	Referenced RT Plan Sequence		ReferencedRTPlanSequence
(300C,0004)	SQ	1	Referenced Beam Sequence		ReferencedBeamSequence
(300C,0006)	IS	1	Referenced Beam Number		ReferencedBeamNumber
(300C,0007)	IS	1	Referenced Reference Image Number		ReferencedReferenceImageNumber
(300C,0008)	DS	1	Start Cumulative Meterset Weight		StartCumulativeMetersetWeight
(300C,0009)	DS	1	End Cumulative Meterset Weight		EndCumulativeMetersetWeight
(300C,000A)	SQ	1	Referenced Brachy Application Setup Sequence		ReferencedBrachyApplicationSetupSequence
(300C,000C)	IS	1	Referenced Brachy Application Setup Number		ReferencedBrachyApplicationSetupNumber
(300C,000E)	IS	1	Referenced Source Number		ReferencedSourceNumber
(300C,0020)	SQ	1	Referenced Fraction Group Sequence		ReferencedFractionGroupSequence
(300C,0022)	IS	1	Referenced Fraction Group Number		ReferencedFractionGroupNumber
(300C,0040)	SQ	1	Referenced Verification Image Sequence		ReferencedVerificationImageSequence
(300C,0042)	SQ	1	Referenced Reference Image Sequence		ReferencedReferenceImageSequence
(300C,0050)	SQ	1	Referenced Dose Reference Sequence		ReferencedDoseReferenceSequence
(300C,0051)	IS	1	Referenced Dose Reference Number		ReferencedDoseReferenceNumber
(300C,0055)	SQ	1	Brachy Referenced Dose Reference Sequence		BrachyReferencedDoseReferenceSequence
(300C,0060)	SQ	1	Referenced Structure Set Sequence		ReferencedStructureSetSequence
(300C,006A)	IS	1	Referenced Patient Setup Number		ReferencedPatientSetupNumber
(300C,0080)	SQ	1	Referenced Dose Sequence		ReferencedDoseSequence
(300C,00A0)	IS	1	Referenced Tolerance Table Number		ReferencedToleranceTableNumber
(300C,00B0)	SQ	1	Referenced Bolus Sequence		ReferencedBolusSequence
(300C,00C0)	IS	1	Referenced Wedge Number		ReferencedWedgeNumber
(300C,00D0)	IS	1	Referenced Compensator Number		ReferencedCompensatorNumber
(300C,00E0)	IS	1	Referenced Block Number		ReferencedBlockNumber
(300C,00F0)	IS	1	Referenced Control Point Index		ReferencedControlPointIndex
(300C,00F2)	SQ	1	Referenced Control Point Sequence		ReferencedControlPointSequence
(300C,00F4)	IS	1	Referenced Start Control Point Index		ReferencedStartControlPointIndex
(300C,00F6)	IS	1	Referenced Stop Control Point Index		ReferencedStopControlPointIndex
(300C,0100)	IS	1	Referenced Range Shifter Number		ReferencedRangeShifterNumber
(300C,0102)	IS	1	Referenced Lateral Spreading Device Number		ReferencedLateralSpreadingDeviceNumber
(300C,0104)	IS	1	Referenced Range Modulator Number		ReferencedRangeModulatorNumber
(300C,0111)	SQ	1	Omitted Beam Task Sequence		OmittedBeamTaskSequence
(300C,0112)	CS	1	Reason for Omission		ReasonForOmission
(300C,0113)	LO	1	Reason for Omission Description		ReasonForOmissionDescription
(300C,0114)	SQ	1	Prescription Overview Sequence		PrescriptionOverviewSequence
(300C,0115)	FL	1	Total Prescription Dose		TotalPrescriptionDose
(300C,0116)	SQ	1	Plan Overview Sequence		PlanOverviewSequence
(300C,0117)	US	1	Plan Overview Index		PlanOverviewIndex
(300C,0118)	US	1	Referenced Plan Overview Index		ReferencedPlanOverviewIndex
(300C,0119)	US	1	Number of Fractions Included		NumberOfFractionsIncluded
(300C,0120)	SQ	1	Dose Calibration Conditions Sequence		DoseCalibrationConditionsSequence
(300C,0121)	FD	1	Absorbed Dose to Meterset Ratio		AbsorbedDoseToMetersetRatio
(300C,0122)	FD	2	Delineated Radiation Field Size		DelineatedRadiationFieldSize
(300C,0123)	CS	1	Dose Calibration Conditions Verified Flag		DoseCalibrationConditionsVerifiedFlag
(300C,0124)	FD	1	Calibration Reference Point Depth		CalibrationReferencePointDepth
(300C,0125)	SQ	1	Gating Beam Hold Transition Sequence		GatingBeamHoldTransitionSequence
(300C,0126)	CS	1	Beam Hold Transition		BeamHoldTransition
(300C,0127)	DT	1	Beam Hold Transition DateTime		BeamHoldTransitionDateTime
(300C,0128)	SQ	1	Beam Hold Originating Device Sequence		BeamHoldOriginatingDeviceSequence
(300C,0129)	CS	1	Beam Hold Transition Trigger Source		BeamHoldTransitionTriggerSource
(300E,0002)	CS	1	Approval Status		ApprovalStatus
(300E,0004)	DA	1	Review Date		ReviewDate
(300E,0005)	TM	1	Review Time		ReviewTime
(300E,0008)	PN	1	Reviewer Name		ReviewerName
(3010,0001)	SQ	1	Radiobiological Dose Effect Sequence		RadiobiologicalDoseEffectSequence
(3010,0002)	CS	1	Radiobiological Dose Effect Flag		RadiobiologicalDoseEffectFlag
(3010,0003)	SQ	1	Effective Dose Calculation Method Category Code Sequence		EffectiveDoseCalculationMethodCategoryCodeSequence
(3010,0004)	SQ	1	Effective Dose Calculation Method Code Sequence		EffectiveDoseCalculationMethodCodeSequence
(3010,0005)	LO	1	Effective Dose Calculation Method Description		EffectiveDoseCalculationMethodDescription
(3010,0006)	UI	1	Conceptual Volume UID		ConceptualVolumeUID
(3010,0007)	SQ	1	Originating SOP Instance Reference Sequence		OriginatingSOPInstanceReferenceSequence
(3010,0008)	SQ	1	Conceptual Volume Constituent Sequence		ConceptualVolumeConstituentSequence
(3010,0009)	SQ	1	Equivalent Conceptual Volume Instance Reference Sequence		EquivalentConceptualVolumeInstanceReferenceSequence
(3010,000A)	SQ	1	Equivalent Conceptual Volumes Sequence		EquivalentConceptualVolumesSequence
(3010,000B)	UI	1	Referenced Conceptual Volume UID		ReferencedConceptualVolumeUID
(3010,000C)	UT	1	Conceptual Volume Combination Expression		ConceptualVolumeCombinationExpression
(3010,000D)	US	1	Conceptual Volume Constituent Index		ConceptualVolumeConstituentIndex
(3010,000E)	CS	1	Conceptual Volume Combination Flag		ConceptualVolumeCombinationFlag
(3010,000F)	ST	1	Conceptual Volume Combination Description		ConceptualVolumeCombinationDescription
(3010,0010)	CS	1	Conceptual Volume Segmentation Defined Flag		ConceptualVolumeSegmentationDefinedFlag
(3010,0011)	SQ	1	Conceptual Volume Segmentation Reference Sequence		ConceptualVolumeSegmentationReferenceSequence
(3010,0012)	SQ	1	Conceptual Volume Constituent Segmentation Reference Sequence		ConceptualVolumeConstituentSegmentationReferenceSequence
(3010,0013)	UI	1	Constituent Conceptual Volume UID		ConstituentConceptualVolumeUID
(3010,0014)	SQ	1	Derivation Conceptual Volume Sequence		DerivationConceptualVolumeSequence
(3010,0015)	UI	1	Source Conceptual Volume UID		SourceConceptualVolumeUID
(3010,0016)	SQ	1	Conceptual Volume Derivation Algorithm Sequence		ConceptualVolumeDerivationAlgorithmSequence
(3010,0017)	ST	1	Conceptual Volume Description		ConceptualVolumeDescription
(3010,0018)	SQ	1	Source Conceptual Volume Sequence		SourceConceptualVolumeSequence
(3010,0019)	SQ	1	Author Identification Sequence		AuthorIdentificationSequence
(3010,001A)	LO	1	Manufacturer's Model Version		ManufacturerModelVersion
(3010,001B)	UC	1	Device Alternate Identifier		DeviceAlternateIdentifier
(3010,001C)	CS	1	Device Alternate Identifier Type		DeviceAlternateIdentifierType
(3010,001D)	LT	1	Device Alternate Identifier Format		DeviceAlternateIdentifierFormat
(3010,001E)	LO	1	Segmentation Creation Template Label		SegmentationCreationTemplateLabel
(3010,001F)	UI	1	Segmentation Template UID		SegmentationTemplateUID
(3010,0020)	US	1	Referenced Segment Reference Index		ReferencedSegmentReferenceIndex
(3010,0021)	SQ	1	Segment Reference Sequence		SegmentReferenceSequence
(3010,0022)	US	1	Segment Reference Index		SegmentReferenceIndex
(3010,0023)	SQ	1	Direct Segment Reference Sequence		DirectSegmentReferenceSequence
(3010,0024)	SQ	1	Combination Segment Reference Sequence		CombinationSegmentReferenceSequence
(3010,0025)	SQ	1	Conceptual Volume Sequence		ConceptualVolumeSequence
(3010,0026)	SQ	1	Segmented RT Accessory Device Sequence		SegmentedRTAccessoryDeviceSequence
(3010,0027)	SQ	1	Segment Characteristics Sequence		SegmentCharacteristicsSequence
(3010,0028)	SQ	1	Related Segment Characteristics Sequence		RelatedSegmentCharacteristicsSequence
(3010,0029)	US	1	Segment Characteristics Precedence		SegmentCharacteristicsPrecedence
(3010,002A)	SQ	1	RT Segment Annotation Sequence		RTSegmentAnnotationSequence
(3010,002B)	SQ	1	Segment Annotation Category Code Sequence		SegmentAnnotationCategoryCodeSequence
(3010,002C)	SQ	1	Segment Annotation Type Code Sequence		SegmentAnnotationTypeCodeSequence
(3010,002D)	LO	1	Device Label		DeviceLabel
(3010,002E)	SQ	1	Device Type Code Sequence		DeviceTypeCodeSequence
(3010,002F)	SQ	1	Segment Annotation Type Modifier Code Sequence		SegmentAnnotationTypeModifierCodeSequence
(3010,0030)	SQ	1	Patient Equipment Relationship Code Sequence		PatientEquipmentRelationshipCodeSequence
(3010,0031)	UI	1	Referenced Fiducials UID		ReferencedFiducialsUID
(3010,0032)	SQ	1	Patient Treatment Orientation Sequence		PatientTreatmentOrientationSequence
(3010,0033)	SH	1	User Content Label		UserContentLabel
(3010,0034)	LO	1	User Content Long Label		UserContentLongLabel
(3010,0035)	SH	1	Entity Label		EntityLabel
(3010,0036)	LO	1	Entity Name		EntityName
(3010,0037)	ST	1	Entity Description		EntityDescription
(3010,0038)	LO	1	Entity Long Label		EntityLongLabel
(3010,0039)	US	1	Device Index		DeviceIndex
(3010,003A)	US	1	RT Treatment Phase Index		RTTreatmentPhaseIndex
(3010,003B)	UI	1	RT Treatment Phase UID		RTTreatmentPhaseUID
(3010,003C)	US	1	RT Prescription Index		RTPrescriptionIndex
(3010,003D)	US	1	RT Segment Annotation Index		RTSegmentAnnotationIndex
(3010,003E)	US	1	Basis RT Treatment Phase Index		BasisRTTreatmentPhaseIndex
(3010,003F)	US	1	Related RT Treatment Phase Index		RelatedRTTreatmentPhaseIndex
(3010,0040)	US	1	Referenced RT Treatment Phase Index		ReferencedRTTreatmentPhaseIndex
(3010,0041)	US	1	Referenced RT Prescription Index		ReferencedRTPrescriptionIndex
(3010,0042)	US	1	Referenced Parent RT Prescription Index		ReferencedParentRTPrescriptionIndex
(3010,0043)	ST	1	Manufacturer's Device Identifier		ManufacturerDeviceIdentifier
(3010,0044)	SQ	1	Instance-Level Referenced Performed Procedure Step Sequence		InstanceLevelReferencedPerformedProcedureStepSequence
(3010,0045)	CS	1	RT Treatment Phase Intent Presence Flag		RTTreatmentPhaseIntentPresenceFlag
(3010,0046)	CS	1	Radiotherapy Treatment Type		RadiotherapyTreatmentType
(3010,0047)	CS	1-n	Teletherapy Radiation Type		TeletherapyRadiationType
(3010,0048)	CS	1-n	Brachytherapy Source Type		BrachytherapySourceType
(3010,0049)	SQ	1	Referenced RT Treatment Phase Sequence		ReferencedRTTreatmentPhaseSequence
(3010,004A)	SQ	1	Referenced Direct Segment Instance Sequence		ReferencedDirectSegmentInstanceSequence
(3010,004B)	SQ	1	Intended RT Treatment Phase Sequence		IntendedRTTreatmentPhaseSequence
(3010,004C)	DA	1	Intended Phase Start Date		IntendedPhaseStartDate
(3010,004D)	DA	1	Intended Phase End Date		IntendedPhaseEndDate
(3010,004E)	SQ	1	RT Treatment Phase Interval Sequence		RTTreatmentPhaseIntervalSequence
(3010,004F)	CS	1	Temporal Relationship Interval Anchor		TemporalRelationshipIntervalAnchor
(3010,0050)	FD	1	Minimum Number of Interval Days		MinimumNumberOfIntervalDays
(3010,0051)	FD	1	Maximum Number of Interval Days		MaximumNumberOfIntervalDays
(3010,0052)	UI	1-n	Pertinent SOP Classes in Study		PertinentSOPClassesInStudy
(3010,0053)	UI	1-n	Pertinent SOP Classes in Series		PertinentSOPClassesInSeries
(3010,0054)	LO	1	RT Prescription Label		RTPrescriptionLabel
(3010,0055)	SQ	1	RT Physician Intent Predecessor Sequence		RTPhysicianIntentPredecessorSequence
(3010,0056)	LO	1	RT Treatment Approach Label		RTTreatmentApproachLabel
(3010,0057)	SQ	1	RT Physician Intent Sequence		RTPhysicianIntentSequence
(3010,0058)	US	1	RT Physician Intent Index		RTPhysicianIntentIndex
(3010,0059)	CS	1	RT Treatment Intent Type		RTTreatmentIntentType
(3010,005A)	UT	1	RT Physician Intent Narrative		RTPhysicianIntentNarrative
(3010,005B)	SQ	1	RT Protocol Code Sequence		RTProtocolCodeSequence
(3010,005C)	ST	1	Reason for Superseding		ReasonForSuperseding
(3010,005D)	SQ	1	RT Diagnosis Code Sequence		RTDiagnosisCodeSequence
(3010,005E)	US	1	Referenced RT Physician Intent Index		ReferencedRTPhysicianIntentIndex
(3010,005F)	SQ	1	RT Physician Intent Input Instance Sequence		RTPhysicianIntentInputInstanceSequence
(3010,0060)	SQ	1	RT Anatomic Prescription Sequence		RTAnatomicPrescriptionSequence
(3010,0061)	UT	1	Prior Treatment Dose Description		PriorTreatmentDoseDescription
(3010,0062)	SQ	1	Prior Treatment Reference Sequence		PriorTreatmentReferenceSequence
(3010,0063)	CS	1	Dosimetric Objective Evaluation Scope		DosimetricObjectiveEvaluationScope
(3010,0064)	SQ	1	Therapeutic Role Category Code Sequence		TherapeuticRoleCategoryCodeSequence
(3010,0065)	SQ	1	Therapeutic Role Type Code Sequence		TherapeuticRoleTypeCodeSequence
(3010,0066)	US	1	Conceptual Volume Optimization Precedence		ConceptualVolumeOptimizationPrecedence
(3010,0067)	SQ	1	Conceptual Volume Category Code Sequence		ConceptualVolumeCategoryCodeSequence
(3010,0068)	CS	1	Conceptual Volume Blocking Constraint		ConceptualVolumeBlockingConstraint
(3010,0069)	SQ	1	Conceptual Volume Type Code Sequence		ConceptualVolumeTypeCodeSequence
(3010,006A)	SQ	1	Conceptual Volume Type Modifier Code Sequence		ConceptualVolumeTypeModifierCodeSequence
(3010,006B)	SQ	1	RT Prescription Sequence		RTPrescriptionSequence
(3010,006C)	SQ	1	Dosimetric Objective Sequence		DosimetricObjectiveSequence
(3010,006D)	SQ	1	Dosimetric Objective Type Code Sequence		DosimetricObjectiveTypeCodeSequence
(3010,006E)	UI	1	Dosimetric Objective UID		DosimetricObjectiveUID
(3010,006F)	UI	1	Referenced Dosimetric Objective UID		ReferencedDosimetricObjectiveUID
(3010,0070)	SQ	1	Dosimetric Objective Parameter Sequence		DosimetricObjectiveParameterSequence
(3010,0071)	SQ	1	Referenced Dosimetric Objectives Sequence		ReferencedDosimetricObjectivesSequence
(3010,0073)	CS	1	Absolute Dosimetric Objective Flag		AbsoluteDosimetricObjectiveFlag
(3010,0074)	FD	1	Dosimetric Objective Weight		DosimetricObjectiveWeight
(3010,0075)	CS	1	Dosimetric Objective Purpose		DosimetricObjectivePurpose
(3010,0076)	SQ	1	Planning Input Information Sequence		PlanningInputInformationSequence
(3010,0077)	LO	1	Treatment Site		TreatmentSite
(3010,0078)	SQ	1	Treatment Site Code Sequence		TreatmentSiteCodeSequence
(3010,0079)	SQ	1	Fraction Pattern Sequence		FractionPatternSequence
(3010,007A)	UT	1	Treatment Technique Notes		TreatmentTechniqueNotes
(3010,007B)	UT	1	Prescription Notes		PrescriptionNotes
(3010,007C)	IS	1	Number of Interval Fractions		NumberOfIntervalFractions
(3010,007D)	US	1	Number of Fractions		NumberOfFractions
(3010,007E)	US	1	Intended Delivery Duration		IntendedDeliveryDuration
(3010,007F)	UT	1	Fractionation Notes		FractionationNotes
(3010,0080)	SQ	1	RT Treatment Technique Code Sequence		RTTreatmentTechniqueCodeSequence
(3010,0081)	SQ	1	Prescription Notes Sequence		PrescriptionNotesSequence
(3010,0082)	SQ	1	Fraction-Based Relationship Sequence		FractionBasedRelationshipSequence
(3010,0083)	CS	1	Fraction-Based Relationship Interval Anchor		FractionBasedRelationshipIntervalAnchor
(3010,0084)	FD	1	Minimum Hours between Fractions		MinimumHoursBetweenFractions
(3010,0085)	TM	1-n	Intended Fraction Start Time		IntendedFractionStartTime
(3010,0086)	LT	1	Intended Start Day of Week		IntendedStartDayOfWeek
(3010,0087)	SQ	1	Weekday Fraction Pattern Sequence		WeekdayFractionPatternSequence
(3010,0088)	SQ	1	Delivery Time Structure Code Sequence		DeliveryTimeStructureCodeSequence
(3010,0089)	SQ	1	Treatment Site Modifier Code Sequence		TreatmentSiteModifierCodeSequence
(3010,0090)	CS	1	Robotic Base Location Indicator	RET	RoboticBaseLocationIndicator
(3010,0091)	SQ	1	Robotic Path Node Set Code Sequence		RoboticPathNodeSetCodeSequence
(3010,0092)	UL	1	Robotic Node Identifier		RoboticNodeIdentifier
(3010,0093)	FD	3	RT Treatment Source Coordinates		RTTreatmentSourceCoordinates
(3010,0094)	FD	1	Radiation Source Coordinate SystemYaw Angle		RadiationSourceCoordinateSystemYawAngle
(3010,0095)	FD	1	Radiation Source Coordinate SystemRoll Angle		RadiationSourceCoordinateSystemRollAngle
(3010,0096)	FD	1	Radiation Source Coordinate System Pitch Angle		RadiationSourceCoordinateSystemPitchAngle
(3010,0097)	SQ	1	Robotic Path Control Point Sequence		RoboticPathControlPointSequence
(3010,0098)	SQ	1	Tomotherapeutic Control Point Sequence		TomotherapeuticControlPointSequence
(3010,0099)	FD	1-n	Tomotherapeutic Leaf Open Durations		TomotherapeuticLeafOpenDurations
(3010,009A)	FD	1-n	Tomotherapeutic Leaf Initial Closed Durations		TomotherapeuticLeafInitialClosedDurations
(3010,00A0)	SQ	1	Conceptual Volume Identification Sequence		ConceptualVolumeIdentificationSequence
(4000,0010)	LT	1	Arbitrary	RET	Arbitrary
(4000,4000)	LT	1	Text Comments	RET	TextComments
(4008,0040)	SH	1	Results ID	RET	ResultsID
(4008,0042)	LO	1	Results ID Issuer	RET	ResultsIDIssuer
(4008,0050)	SQ	1	Referenced Interpretation Sequence	RET	ReferencedInterpretationSequence
(4008,00FF)	CS	1	Report Production Status (Trial)	RET	ReportProductionStatusTrial
(4008,0100)	DA	1	Interpretation Recorded Date	RET	InterpretationRecordedDate
(4008,0101)	TM	1	Interpretation Recorded Time	RET	InterpretationRecordedTime
(4008,0102)	PN	1	Interpretation Recorder	RET	InterpretationRecorder
(4008,0103)	LO	1	Reference to Recorded Sound	RET	ReferenceToRecordedSound
(4008,0108)	DA	1	Interpretation Transcription Date	RET	InterpretationTranscriptionDate
(4008,0109)	TM	1	Interpretation Transcription Time	RET	InterpretationTranscriptionTime
(4008,010A)	PN	1	Interpretation Transcriber	RET	InterpretationTranscriber
(4008,010B)	ST	1	Interpretation Text	RET	InterpretationText
(4008,010C)	PN	1	Interpretation Author	RET	InterpretationAuthor
(4008,0111)	SQ	1	Interpretation Approver Sequence	RET	InterpretationApproverSequence
(4008,0112)	DA	1	Interpretation Approval Date	RET	InterpretationApprovalDate
(4008,0113)	TM	1	Interpretation Approval Time	RET	InterpretationApprovalTime
(4008,0114)	PN	1	Physician Approving Interpretation	RET	PhysicianApprovingInterpretation
(4008,0115)	LT	1	Interpretation Diagnosis Description	RET	InterpretationDiagnosisDescription
(4008,0117)	SQ	1	Interpretation Diagnosis Code Sequence	RET	InterpretationDiagnosisCodeSequence
(4008,0118)	SQ	1	Results Distribution List Sequence	RET	ResultsDistributionListSequence
(4008,0119)	PN	1	Distribution Name	RET	DistributionName
(4008,011A)	LO	1	Distribution Address	RET	DistributionAddress
(4008,0200)	SH	1	Interpretation ID	RET	InterpretationID
(4008,0202)	LO	1	Interpretation ID Issuer	RET	InterpretationIDIssuer
(4008,0210)	CS	1	Interpretation Type ID	RET	InterpretationTypeID
(4008,0212)	CS	1	Interpretation Status ID	RET	InterpretationStatusID
(4008,0300)	ST	1	Impressions	RET	Impressions
(4008,4000)	ST	1	Results Comments	RET	ResultsComments
(4010,0001)	CS	1	Low Energy Detectors		LowEnergyDetectors
(4010,0002)	CS	1	High Energy Detectors		HighEnergyDetectors
(4010,0004)	SQ	1	Detector Geometry Sequence		DetectorGeometrySequence
(4010,1001)	SQ	1	Threat ROI Voxel Sequence		ThreatROIVoxelSequence
(4010,1004)	FL	3	Threat ROI Base		ThreatROIBase
(4010,1005)	FL	3	Threat ROI Extents		ThreatROIExtents
(4010,1006)	OB	1	Threat ROI Bitmap		ThreatROIBitmap
(4010,1007)	SH	1	Route Segment ID		RouteSegmentID
(4010,1008)	CS	1	Gantry Type		GantryType
(4010,1009)	CS	1	OOI Owner Type		OOIOwnerType
(4010,100A)	SQ	1	Route Segment Sequence		RouteSegmentSequence
(4010,1010)	US	1	Potential Threat Object ID		PotentialThreatObjectID
(4010,1011)	SQ	1	Threat Sequence		ThreatSequence
(4010,1012)	CS	1	Threat Category		ThreatCategory
(4010,1013)	LT	1	Threat Category Description		ThreatCategoryDescription
(4010,1014)	CS	1	ATD Ability Assessment		ATDAbilityAssessment
(4010,1015)	CS	1	ATD Assessment Flag		ATDAssessmentFlag
(4010,1016)	FL	1	ATD Assessment Probability		ATDAssessmentProbability
(4010,1017)	FL	1	Mass		Mass
(4010,1018)	FL	1	Density		Density
(4010,1019)	FL	1	Z Effective		ZEffective
(4010,101A)	SH	1	Boarding Pass ID		BoardingPassID
(4010,101B)	FL	3	Center of Mass		CenterOfMass
(4010,101C)	FL	3	Center of PTO		CenterOfPTO
(4010,101D)	FL	6-n	Bounding Polygon		BoundingPolygon
(4010,101E)	SH	1	Route Segment Start Location ID		RouteSegmentStartLocationID
(4010,101F)	SH	1	Route Segment End Location ID		RouteSegmentEndLocationID
(4010,1020)	CS	1	Route Segment Location ID Type		RouteSegmentLocationIDType
(4010,1021)	CS	1-n	Abort Reason		AbortReason
(4010,1023)	FL	1	Volume of PTO		VolumeOfPTO
(4010,1024)	CS	1	Abort Flag		AbortFlag
(4010,1025)	DT	1	Route Segment Start Time		RouteSegmentStartTime
(4010,1026)	DT	1	Route Segment End Time		RouteSegmentEndTime
(4010,1027)	CS	1	TDR Type		TDRType
(4010,1028)	CS	1	International Route Segment		InternationalRouteSegment
(4010,1029)	LO	1-n	Threat Detection Algorithm and Version		ThreatDetectionAlgorithmAndVersion
(4010,102A)	SH	1	Assigned Location		AssignedLocation
(4010,102B)	DT	1	Alarm Decision Time		AlarmDecisionTime
(4010,1031)	CS	1	Alarm Decision		AlarmDecision
(4010,1033)	US	1	Number of Total Objects		NumberOfTotalObjects
(4010,1034)	US	1	Number of Alarm Objects		NumberOfAlarmObjects
(4010,1037)	SQ	1	PTO Representation Sequence		PTORepresentationSequence
(4010,1038)	SQ	1	ATD Assessment Sequence		ATDAssessmentSequence
(4010,1039)	CS	1	TIP Type		TIPType
(4010,103A)	CS	1	DICOS Version		DICOSVersion
(4010,1041)	DT	1	OOI Owner Creation Time		OOIOwnerCreationTime
(4010,1042)	CS	1	OOI Type		OOIType
(4010,1043)	FL	3	OOI Size		OOISize
(4010,1044)	CS	1	Acquisition Status		AcquisitionStatus
(4010,1045)	SQ	1	Basis Materials Code Sequence		BasisMaterialsCodeSequence
(4010,1046)	CS	1	Phantom Type		PhantomType
(4010,1047)	SQ	1	OOI Owner Sequence		OOIOwnerSequence
(4010,1048)	CS	1	Scan Type		ScanType
(4010,1051)	LO	1	Itinerary ID		ItineraryID
(4010,1052)	SH	1	Itinerary ID Type		ItineraryIDType
(4010,1053)	LO	1	Itinerary ID Assigning Authority		ItineraryIDAssigningAuthority
(4010,1054)	SH	1	Route ID		RouteID
(4010,1055)	SH	1	Route ID Assigning Authority		RouteIDAssigningAuthority
(4010,1056)	CS	1	Inbound Arrival Type		InboundArrivalType
(4010,1058)	SH	1	Carrier ID		CarrierID
(4010,1059)	CS	1	Carrier ID Assigning Authority		CarrierIDAssigningAuthority
(4010,1060)	FL	3	Source Orientation		SourceOrientation
(4010,1061)	FL	3	Source Position		SourcePosition
(4010,1062)	FL	1	Belt Height		BeltHeight
(4010,1064)	SQ	1	Algorithm Routing Code Sequence		AlgorithmRoutingCodeSequence
(4010,1067)	CS	1	Transport Classification		TransportClassification
(4010,1068)	LT	1	OOI Type Descriptor		OOITypeDescriptor
(4010,1069)	FL	1	Total Processing Time		TotalProcessingTime
(4010,106C)	OB	1	Detector Calibration Data		DetectorCalibrationData
(4010,106D)	CS	1	Additional Screening Performed		AdditionalScreeningPerformed
(4010,106E)	CS	1	Additional Inspection Selection Criteria		AdditionalInspectionSelectionCriteria
(4010,106F)	SQ	1	Additional Inspection Method Sequence		AdditionalInspectionMethodSequence
(4010,1070)	CS	1	AIT Device Type		AITDeviceType
(4010,1071)	SQ	1	QR Measurements Sequence		QRMeasurementsSequence
(4010,1072)	SQ	1	Target Material Sequence		TargetMaterialSequence
(4010,1073)	FD	1	SNR Threshold		SNRThreshold
(4010,1075)	DS	1	Image Scale Representation		ImageScaleRepresentation
(4010,1076)	SQ	1	Referenced PTO Sequence		ReferencedPTOSequence
(4010,1077)	SQ	1	Referenced TDR Instance Sequence		ReferencedTDRInstanceSequence
(4010,1078)	ST	1	PTO Location Description		PTOLocationDescription
(4010,1079)	SQ	1	Anomaly Locator Indicator Sequence		AnomalyLocatorIndicatorSequence
(4010,107A)	FL	3	Anomaly Locator Indicator		AnomalyLocatorIndicator
(4010,107B)	SQ	1	PTO Region Sequence		PTORegionSequence
(4010,107C)	CS	1	Inspection Selection Criteria		InspectionSelectionCriteria
(4010,107D)	SQ	1	Secondary Inspection Method Sequence		SecondaryInspectionMethodSequence
(4010,107E)	DS	6	PRCS to RCS Orientation		PRCSToRCSOrientation
(4FFE,0001)	SQ	1	MAC Parameters Sequence		MACParametersSequence
(5000,0005)	US	1	Curve Dimensions	RET	CurveDimensions
(5000,0010)	US	1	Number of Points	RET	NumberOfPoints
(5000,0020)	CS	1	Type of Data	RET	TypeOfData
(5000,0022)	LO	1	Curve Description	RET	CurveDescription
(5000,0030)	SH	1-n	Axis Units	RET	AxisUnits
(5000,0040)	SH	1-n	Axis Labels	RET	AxisLabels
(5000,0103)	US	1	Data Value Representation	RET	DataValueRepresentation
(5000,0104)	US	1-n	Minimum Coordinate Value	RET	MinimumCoordinateValue
(5000,0105)	US	1-n	Maximum Coordinate Value	RET	MaximumCoordinateValue
(5000,0106)	SH	1-n	Curve Range	RET	CurveRange
(5000,0110)	US	1-n	Curve Data Descriptor	RET	CurveDataDescriptor
(5000,0112)	US	1-n	Coordinate Start Value	RET	CoordinateStartValue
(5000,0114)	US	1-n	Coordinate Step Value	RET	CoordinateStepValue
(5000,1001)	CS	1	Curve Activation Layer	RET	CurveActivationLayer
(5000,2000)	US	1	Audio Type	RET	AudioType
(5000,2002)	US	1	Audio Sample Format	RET	AudioSampleFormat
(5000,2004)	US	1	Number of Channels	RET	NumberOfChannels
(5000,2006)	UL	1	Number of Samples	RET	NumberOfSamples
(5000,2008)	UL	1	Sample Rate	RET	SampleRate
(5000,200A)	UL	1	Total Time	RET	TotalTime
(5000,200C)	OB or OW	1	Audio Sample Data	RET	AudioSampleData
(5000,200E)	LT	1	Audio Comments	RET	AudioComments
(5000,2500)	LO	1	Curve Label	RET	CurveLabel
(5000,2600)	SQ	1	Curve Referenced Overlay Sequence	RET	CurveReferencedOverlaySequence
(5000,2610)	US	1	Curve Referenced Overlay Group	RET	CurveReferencedOverlayGroup
(5000,3000)	OB or OW	1	Curve Data	RET	CurveData
(5200,9229)	SQ	1	Shared Functional Groups Sequence		SharedFunctionalGroupsSequence
(5200,9230)	SQ	1	Per-Frame Functional Groups Sequence		PerFrameFunctionalGroupsSequence
(5400,0100)	SQ	1	Waveform Sequence		WaveformSequence
(5400,0110)	OB or OW	1	Channel Minimum Value		ChannelMinimumValue
(5400,0112)	OB or OW	1	Channel Maximum Value		ChannelMaximumValue
(5400,1004)	US	1	Waveform Bits Allocated		WaveformBitsAllocated
(5400,1006)	CS	1	Waveform Sample Interpretation		WaveformSampleInterpretation
(5400,100A)	OB or OW	1	Waveform Padding Value		WaveformPaddingValue
(5400,1010)	OB or OW	1	Waveform Data		WaveformData
(5600,0010)	OF	1	First Order Phase Correction Angle		FirstOrderPhaseCorrectionAngle
(5600,0020)	OF	1	Spectroscopy Data		SpectroscopyData
(6000,0010)	US	1	Overlay Rows		OverlayRows
(6000,0011)	US	1	Overlay Columns		OverlayColumns
(6000,0012)	US	1	Overlay Planes	RET	OverlayPlanes
(6000,0015)	IS	1	Number of Frames in Overlay		NumberOfFramesInOverlay
(6000,0022)	LO	1	Overlay Description		OverlayDescription
(6000,0040)	CS	1	Overlay Type		OverlayType
(6000,0045)	LO	1	Overlay Subtype		OverlaySubtype
(6000,0050)	SS	2	Overlay Origin		OverlayOrigin
(6000,0051)	US	1	Image Frame Origin		ImageFrameOrigin
(6000,0052)	US	1	Overlay Plane Origin	RET	OverlayPlaneOrigin
(6000,0060)	CS	1	Overlay Compression Code	RET	OverlayCompressionCode
(6000,0061)	SH	1	Overlay Compression Originator	RET	OverlayCompressionOriginator
(6000,0062)	SH	1	Overlay Compression Label	RET	OverlayCompressionLabel
(6000,0063)	CS	1	Overlay Compression Description	RET	OverlayCompressionDescription
(6000,0066)	AT	1-n	Overlay Compression Step Pointers	RET	OverlayCompressionStepPointers
(6000,0068)	US	1	Overlay Repeat Interval	RET	OverlayRepeatInterval
(6000,0069)	US	1	Overlay Bits Grouped	RET	OverlayBitsGrouped
(6000,0100)	US	1	Overlay Bits Allocated		OverlayBitsAllocated
(6000,0102)	US	1	Overlay Bit Position		OverlayBitPosition
(6000,0110)	CS	1	Overlay Format	RET	OverlayFormat
(6000,0200)	US	1	Overlay Location	RET	OverlayLocation
(6000,0800)	CS	1-n	Overlay Code Label	RET	OverlayCodeLabel
(6000,0802)	US	1	Overlay Number of Tables	RET	OverlayNumberOfTables
(6000,0803)	AT	1-n	Overlay Code Table Location	RET	OverlayCodeTableLocation
(6000,0804)	US	1	Overlay Bits For Code Word	RET	OverlayBitsForCodeWord
(6000,1001)	CS	1	Overlay Activation Layer		OverlayActivationLayer
(6000,1100)	US	1	Overlay Descriptor - Gray	RET	OverlayDescriptorGray
(6000,1101)	US	1	Overlay Descriptor - Red	RET	OverlayDescriptorRed
(6000,1102)	US	1	Overlay Descriptor - Green	RET	OverlayDescriptorGreen
(6000,1103)	US	1	Overlay Descriptor - Blue	RET	OverlayDescriptorBlue
(6000,1200)	US	1-n	Overlays - Gray	RET	OverlaysGray
(6000,1201)	US	1-n	Overlays - Red	RET	OverlaysRed
(6000,1202)	US	1-n	Overlays - Green	RET	OverlaysGreen
(6000,1203)	US	1-n	Overlays - Blue	RET	OverlaysBlue
(6000,1301)	IS	1	ROI Area		ROIArea
(6000,1302)	DS	1	ROI Mean		ROIMean
(6000,1303)	DS	1	ROI Standard Deviation		ROIStandardDeviation
(6000,1500)	LO	1	Overlay Label		OverlayLabel
(6000,3000)	OB or OW	1	Overlay Data		OverlayData
(6000,4000)	LT	1	Overlay Comments	RET	OverlayComments
(7F00,0010)	OB or OW	1	Variable Pixel Data	RET	VariablePixelData
(7F00,0011)	US	1	Variable Next Data Group	RET	VariableNextDataGroup
(7F00,0020)	OW	1	Variable Coefficients SDVN	RET	VariableCoefficientsSDVN
(7F00,0030)	OW	1	Variable Coefficients SDHN	RET	VariableCoefficientsSDHN
(7F00,0040)	OW	1	Variable Coefficients SDDN	RET	VariableCoefficientsSDDN
(7FE0,0001)	OV	1	Extended Offset Table		ExtendedOffsetTable
(7FE0,0002)	OV	1	Extended Offset Table Lengths		ExtendedOffsetTableLengths
(7FE0,0003)	UV	1	Encapsulated Pixel Data Value Total Length		EncapsulatedPixelDataValueTotalLength
(7FE0,0008)	OF	1	Float Pixel Data		FloatPixelData
(7FE0,0009)	OD	1	Double Float Pixel Data		DoubleFloatPixelData
(7FE0,0010)	OB or OW	1	Pixel Data		PixelData
(7FE0,0020)	OW	1	Coefficients SDVN	RET	CoefficientsSDVN
(7FE0,0030)	OW	1	Coefficients SDHN	RET	CoefficientsSDHN
(7FE0,0040)	OW	1	Coefficients SDDN	RET	CoefficientsSDDN
(FFFA,FFFA)	SQ	1	Digital Signatures Sequence		DigitalSignaturesSequence
(FFFC,FFFC)	OB	1	Data Set Trailing Padding		DataSetTrailingPadding
(FFFE,E000)	NONE	1	Item		Item
(FFFE,E00D)	NONE	1	Item Delimitation Item		ItemDelimitationItem
(FFFE,E0DD)	NONE	1	Sequence Delimitation Item		SequenceDelimitationItem
`
